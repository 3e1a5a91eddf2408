package types

// CreateAlbumRequest 相册创建请求 (multipart 表单，封面走 coverImage 字段).
type CreateAlbumRequest struct {
	Title       string `form:"title"       rule:"required,max=512"`  // 标题
	Description string `form:"description" rule:"required,max=4096"` // 简介
}

// AddAlbumPhotoRequest 单张照片追加请求 (multipart 表单，照片走 image 字段).
type AddAlbumPhotoRequest struct {
	AlbumID uint   `form:"albumId" rule:"required"` // 相册 ID
	Alt     string `form:"alt"     rule:"max=255"`  // 替代文本，缺省 Gallery Photo
}

// AddAlbumPhotosRequest 批量照片追加请求 (multipart 表单，照片走 images 字段).
type AddAlbumPhotosRequest struct {
	AlbumID uint `form:"albumId" rule:"required"` // 相册 ID
}

// AddAlbumPhotosResponse 批量追加结果.
// 逐张处理，单张失败即中断，已成功的照片保留，Failed 为未落库的数量.
type AddAlbumPhotosResponse struct {
	AlbumID  uint     `json:"albumId"`
	Added    []string `json:"added"`    // 新增照片地址，保持提交顺序
	Failed   int      `json:"failed"`   // 中断后未追加的数量
	PhotoNum int      `json:"photoNum"` // 追加后的照片总数
}
