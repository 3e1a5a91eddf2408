package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/schoolvault/pkg/internal/service"
	"github.com/yeisme/schoolvault/pkg/internal/types"
)

// CreateAlbum 创建相册.
//
//	@Summary		创建相册
//	@Description	创建一个相册，封面可选（multipart 的 coverImage 字段），照片从空数组开始
//	@Tags			相册
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			title		formData	string	true	"标题"
//	@Param			description	formData	string	true	"简介"
//	@Param			coverImage	formData	file	false	"封面"
//	@Success		201			{object}	model.Album
//	@Failure		400			{object}	types.ErrorResponse
//	@Router			/api/v1/albums [post]
func CreateAlbum(c *gin.Context) {
	var req types.CreateAlbumRequest
	if !bindValidated(c, &req) {
		return
	}

	svc := service.NewAlbumService(c.Request.Context())
	rec, err := svc.Create(c.Request.Context(), &req, optionalFile(c, "coverImage"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// ListAlbums 相册列表.
//
//	@Summary	相册列表
//	@Tags		相册
//	@Produce	json
//	@Success	200	{array}	model.Album
//	@Router		/api/v1/albums [get]
func ListAlbums(c *gin.Context) {
	svc := service.NewAlbumService(c.Request.Context())
	list, err := svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetAlbum 按 ID 查询相册.
//
//	@Summary	查询相册
//	@Tags		相册
//	@Produce	json
//	@Param		id	path		int	true	"相册 ID"
//	@Success	200	{object}	model.Album
//	@Failure	404	{object}	types.ErrorResponse
//	@Router		/api/v1/albums/{id} [get]
func GetAlbum(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewAlbumService(c.Request.Context())
	rec, err := svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// DeleteAlbum 删除相册，封面与全部照片一并回收.
//
//	@Summary	删除相册
//	@Tags		相册
//	@Produce	json
//	@Param		id	path		int	true	"相册 ID"
//	@Success	200	{object}	types.MessageResponse
//	@Failure	404	{object}	types.ErrorResponse
//	@Router		/api/v1/albums/{id} [delete]
func DeleteAlbum(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewAlbumService(c.Request.Context())
	if err := svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// AddAlbumPhoto 向相册追加单张照片.
//
//	@Summary		追加单张照片
//	@Description	向相册追加一张照片（multipart 的 image 字段）
//	@Tags			相册
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			albumId	formData	int		true	"相册 ID"
//	@Param			alt		formData	string	false	"替代文本"
//	@Param			image	formData	file	true	"照片"
//	@Success		200		{object}	types.AddAlbumPhotosResponse
//	@Failure		400		{object}	types.ErrorResponse
//	@Failure		404		{object}	types.ErrorResponse
//	@Failure		409		{object}	types.ErrorResponse
//	@Router			/api/v1/albums/upload-photo [post]
func AddAlbumPhoto(c *gin.Context) {
	var req types.AddAlbumPhotoRequest
	if !bindValidated(c, &req) {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	svc := service.NewAlbumService(c.Request.Context())
	resp, err := svc.AddPhoto(c.Request.Context(), req.AlbumID, req.Alt, file)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AddAlbumPhotos 向相册批量追加照片.
//
//	@Summary		批量追加照片
//	@Description	向相册批量追加照片（multipart 的 images 字段，可多个）；逐张处理，单张失败即中断，已成功的保留并返回成功与失败数量
//	@Tags			相册
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			albumId	formData	int		true	"相册 ID"
//	@Param			images	formData	file	true	"照片（可多个）"
//	@Success		200		{object}	types.AddAlbumPhotosResponse
//	@Failure		400		{object}	types.ErrorResponse
//	@Failure		404		{object}	types.ErrorResponse
//	@Failure		409		{object}	types.ErrorResponse
//	@Router			/api/v1/albums/upload-photos [post]
func AddAlbumPhotos(c *gin.Context) {
	var req types.AddAlbumPhotosRequest
	if !bindValidated(c, &req) {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one image is required"})
		return
	}

	svc := service.NewAlbumService(c.Request.Context())
	resp, err := svc.AddPhotos(c.Request.Context(), req.AlbumID, "", files)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
