package model

import (
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
)

const (
	// DefaultAlbumCoverURL 相册缺省封面.
	DefaultAlbumCoverURL = "https://placehold.co/600x400/b9e5fd/0c457e?text=No+Cover"
	// DefaultAlbumPhotoAlt 相册照片缺省替代文本.
	DefaultAlbumPhotoAlt = "Gallery Photo"
)

// AlbumImage 相册内的单张照片，整组以 JSON 形式存在 Images 列里.
type AlbumImage struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
	// StorageKey 上传产物的存储键，外链照片为空
	StorageKey string `json:"storageKey,omitempty"`
}

// Album 相册模型，照片内嵌存储，追加照片依赖 Version 做乐观并发控制.
type Album struct {
	ID          uint   `gorm:"primaryKey"        json:"id"`
	Title       string `gorm:"size:512;not null" json:"title"`
	Description string `gorm:"type:text"         json:"description"`
	// CoverImage 封面地址，未设置时用缺省封面
	CoverImage      string `gorm:"size:1024"       json:"coverImage"`
	StorageKey      string `gorm:"size:1024;index" json:"-"`
	StorageCategory string `gorm:"size:32"         json:"-"`
	// Images 照片数组（AlbumImage 的 JSON 序列化），保持追加顺序
	Images datatypes.JSON `gorm:"type:text" json:"images"`
	// Version 每次照片变更自增，UPDATE 带版本条件防止并发追加互相覆盖
	Version       int       `gorm:"not null;default:0" json:"-"`
	SortTimestamp int64     `gorm:"index"              json:"timestamp"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Photos 解码 Images 列为照片切片，空列返回空切片.
func (a *Album) Photos() ([]AlbumImage, error) {
	if len(a.Images) == 0 {
		return []AlbumImage{}, nil
	}
	var photos []AlbumImage
	if err := sonic.Unmarshal(a.Images, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// SetPhotos 编码照片切片写回 Images 列.
func (a *Album) SetPhotos(photos []AlbumImage) error {
	data, err := sonic.Marshal(photos)
	if err != nil {
		return err
	}
	a.Images = datatypes.JSON(data)
	return nil
}
