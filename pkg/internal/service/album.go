package service

import (
	"context"
	"mime/multipart"
	"time"

	"gorm.io/gorm"

	"github.com/yeisme/schoolvault/pkg/internal/model"
	"github.com/yeisme/schoolvault/pkg/internal/types"
	"github.com/yeisme/schoolvault/pkg/internal/upload"
	nlog "github.com/yeisme/schoolvault/pkg/log"
	"github.com/yeisme/schoolvault/pkg/queue"
)

// albumAppendRetries 版本冲突时照片追加的最大重试次数.
const albumAppendRetries = 3

// AlbumService 相册业务，照片内嵌在相册记录里.
type AlbumService struct {
	res *resource[model.Album]
}

// NewAlbumService 从 context 获取依赖实例.
func NewAlbumService(c context.Context) *AlbumService {
	return newAlbumService(newDeps(c))
}

func newAlbumService(d *deps) *AlbumService {
	return &AlbumService{res: &resource[model.Album]{
		deps: d,
		name: "albums",
		listScope: func(q *gorm.DB) *gorm.DB {
			return q.Order("sort_timestamp DESC")
		},
		keysOf: albumStorageKeys,
		refOf: func(a *model.Album) queue.ContentRef {
			return queue.ContentRef{Type: "album", ID: a.ID, Title: a.Title}
		},
	}}
}

// albumStorageKeys 收集封面与全部照片的存储键，删除相册时一并回收.
func albumStorageKeys(a *model.Album) []string {
	keys := []string{a.StorageKey}

	photos, err := a.Photos()
	if err != nil {
		nlog.Logger().Warn().Err(err).Uint("album_id", a.ID).Msg("解析相册照片失败")
		return keys
	}

	for _, p := range photos {
		if p.StorageKey != "" {
			keys = append(keys, p.StorageKey)
		}
	}

	return keys
}

// Create 创建相册，封面可选，照片从空数组开始.
func (s *AlbumService) Create(ctx context.Context, req *types.CreateAlbumRequest, cover *multipart.FileHeader) (*model.Album, error) {
	rec := &model.Album{
		Title:         req.Title,
		Description:   req.Description,
		CoverImage:    model.DefaultAlbumCoverURL,
		SortTimestamp: time.Now().UnixMilli(),
	}
	if err := rec.SetPhotos([]model.AlbumImage{}); err != nil {
		return nil, err
	}

	var desc *upload.Descriptor
	if cover != nil {
		var err error
		desc, err = s.res.processUpload(ctx, cover, upload.CategoryImage)
		if err != nil {
			return nil, err
		}

		rec.CoverImage = desc.URL
		rec.StorageKey = desc.StorageKey
		rec.StorageCategory = string(desc.Category)
	}

	if err := s.res.Create(ctx, rec); err != nil {
		if desc != nil {
			s.res.discardUpload(ctx, desc)
		}

		return nil, err
	}

	return rec, nil
}

// List 按时间倒序返回全部相册.
func (s *AlbumService) List(ctx context.Context) ([]model.Album, error) {
	return s.res.List(ctx)
}

// Get 按 ID 查询相册.
func (s *AlbumService) Get(ctx context.Context, id uint) (*model.Album, error) {
	return s.res.Get(ctx, id)
}

// Delete 删除相册，封面与全部照片一并回收.
func (s *AlbumService) Delete(ctx context.Context, id uint) error {
	return s.res.Delete(ctx, id)
}

// AddPhotos 批量向相册追加照片，逐张处理：上传一张落库一张，
// 单张失败即停止，已落库的照片保留，余下的计入 Failed 返回给调用方.
// 第一张就失败时直接返回错误.
func (s *AlbumService) AddPhotos(ctx context.Context, albumID uint, alt string, files []*multipart.FileHeader) (*types.AddAlbumPhotosResponse, error) {
	// 相册必须存在
	if _, err := s.res.Get(ctx, albumID); err != nil {
		return nil, err
	}

	if alt == "" {
		alt = model.DefaultAlbumPhotoAlt
	}

	resp := &types.AddAlbumPhotosResponse{AlbumID: albumID, Added: make([]string, 0, len(files))}

	for i, fh := range files {
		desc, err := s.res.processUpload(ctx, fh, upload.CategoryImage)
		if err != nil {
			return s.abortBatch(resp, albumID, len(files), i, err)
		}

		photoNum, err := s.appendPhoto(ctx, albumID, alt, desc)
		if err != nil {
			s.res.discardUpload(ctx, desc)
			return s.abortBatch(resp, albumID, len(files), i, err)
		}

		resp.Added = append(resp.Added, desc.URL)
		resp.PhotoNum = photoNum
	}

	return resp, nil
}

// AddPhoto 向相册追加单张照片.
func (s *AlbumService) AddPhoto(ctx context.Context, albumID uint, alt string, file *multipart.FileHeader) (*types.AddAlbumPhotosResponse, error) {
	return s.AddPhotos(ctx, albumID, alt, []*multipart.FileHeader{file})
}

// abortBatch 中断批量追加：没有任何成功时返回错误本身，
// 否则保留已落库的照片并把余量计入 Failed.
func (s *AlbumService) abortBatch(resp *types.AddAlbumPhotosResponse, albumID uint, total, index int, err error) (*types.AddAlbumPhotosResponse, error) {
	if len(resp.Added) == 0 {
		return nil, err
	}

	nlog.Logger().Warn().Err(err).
		Uint("album_id", albumID).
		Int("index", index).
		Msg("批量照片追加中断，已成功的保留")

	resp.Failed = total - len(resp.Added)

	return resp, nil
}

// appendPhoto 把一张已上传的照片追加进相册的 Images 列，返回追加后的照片总数.
// UPDATE 带版本条件，没命中说明并发修改，重读后重试.
func (s *AlbumService) appendPhoto(ctx context.Context, albumID uint, alt string, desc *upload.Descriptor) (int, error) {
	for attempt := 0; attempt < albumAppendRetries; attempt++ {
		var album model.Album
		if err := s.res.dbClient.WithContext(ctx).First(&album, albumID).Error; err != nil {
			return 0, translateDBError(err)
		}

		photos, err := album.Photos()
		if err != nil {
			return 0, err
		}

		photos = append(photos, model.AlbumImage{Src: desc.URL, Alt: alt, StorageKey: desc.StorageKey})
		if err := album.SetPhotos(photos); err != nil {
			return 0, err
		}

		result := s.res.dbClient.WithContext(ctx).
			Model(&model.Album{}).
			Where("id = ? AND version = ?", album.ID, album.Version).
			Updates(map[string]any{"images": album.Images, "version": album.Version + 1})
		if result.Error != nil {
			return 0, translateDBError(result.Error)
		}

		if result.RowsAffected == 1 {
			s.res.invalidateList(ctx)
			s.res.emit(queue.PublishContentUpdated, &album)

			if pub := s.res.publisher(); pub != nil {
				payload := queue.AlbumPhotoAddedPayload{
					AlbumID:  album.ID,
					Title:    album.Title,
					Added:    []string{desc.URL},
					PhotoNum: len(photos),
				}
				if err := queue.PublishAlbumPhotoAdded(pub, payload); err != nil {
					nlog.Logger().Warn().Err(err).Uint("album_id", album.ID).Msg("照片事件发布失败")
				}
			}

			return len(photos), nil
		}

		nlog.Logger().Debug().
			Uint("album_id", albumID).
			Int("attempt", attempt+1).
			Msg("相册版本冲突，重试追加")
	}

	return 0, ErrConcurrentUpdate
}
