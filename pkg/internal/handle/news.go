package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/schoolvault/pkg/internal/service"
	"github.com/yeisme/schoolvault/pkg/internal/types"
)

// CreateNews 创建新闻.
//
//	@Summary		创建新闻
//	@Description	创建一条新闻，配图可选（multipart 的 image 字段），缺失时使用占位图
//	@Tags			新闻
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			title	formData	string	true	"标题"
//	@Param			content	formData	string	true	"正文"
//	@Param			date	formData	string	false	"展示日期"
//	@Param			image	formData	file	false	"配图"
//	@Success		201		{object}	model.News
//	@Failure		400		{object}	types.ErrorResponse
//	@Failure		413		{object}	types.ErrorResponse
//	@Failure		415		{object}	types.ErrorResponse
//	@Router			/api/v1/news [post]
func CreateNews(c *gin.Context) {
	var req types.CreateNewsRequest
	if !bindValidated(c, &req) {
		return
	}

	svc := service.NewNewsService(c.Request.Context())
	rec, err := svc.Create(c.Request.Context(), &req, optionalFile(c, "image"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// ListNews 新闻列表.
//
//	@Summary	新闻列表
//	@Description	按创建时间倒序返回全部新闻
//	@Tags		新闻
//	@Produce	json
//	@Success	200	{array}	model.News
//	@Router		/api/v1/news [get]
func ListNews(c *gin.Context) {
	svc := service.NewNewsService(c.Request.Context())
	list, err := svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetNews 按 ID 查询新闻.
//
//	@Summary	查询新闻
//	@Tags		新闻
//	@Produce	json
//	@Param		id	path		int	true	"新闻 ID"
//	@Success	200	{object}	model.News
//	@Failure	404	{object}	types.ErrorResponse
//	@Router		/api/v1/news/{id} [get]
func GetNews(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewNewsService(c.Request.Context())
	rec, err := svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// DeleteNews 删除新闻并回收其配图.
//
//	@Summary	删除新闻
//	@Tags		新闻
//	@Produce	json
//	@Param		id	path		int	true	"新闻 ID"
//	@Success	200	{object}	types.MessageResponse
//	@Failure	404	{object}	types.ErrorResponse
//	@Router		/api/v1/news/{id} [delete]
func DeleteNews(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewNewsService(c.Request.Context())
	if err := svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
