package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/schoolvault/pkg/internal/service"
	"github.com/yeisme/schoolvault/pkg/internal/types"
)

// CreateEvent 创建活动.
//
//	@Summary		创建活动
//	@Description	创建一条校园活动，配图可选（multipart 的 image 字段）
//	@Tags			活动
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			title		formData	string	true	"标题"
//	@Param			description	formData	string	false	"简介"
//	@Param			eventDate	formData	string	true	"活动时间 (RFC3339 或 2006-01-02)"
//	@Param			location	formData	string	false	"地点"
//	@Param			image		formData	file	false	"配图"
//	@Success		201			{object}	model.Event
//	@Failure		400			{object}	types.ErrorResponse
//	@Router			/api/v1/events [post]
func CreateEvent(c *gin.Context) {
	var req types.CreateEventRequest
	if !bindValidated(c, &req) {
		return
	}

	svc := service.NewEventService(c.Request.Context())
	rec, err := svc.Create(c.Request.Context(), &req, optionalFile(c, "image"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// ListEvents 活动列表，只含未过期活动.
//
//	@Summary		活动列表
//	@Description	返回未过期活动，按举办时间正序
//	@Tags			活动
//	@Produce		json
//	@Success		200	{array}	model.Event
//	@Router			/api/v1/events [get]
func ListEvents(c *gin.Context) {
	svc := service.NewEventService(c.Request.Context())
	list, err := svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetEvent 按 ID 查询活动.
//
//	@Summary	查询活动
//	@Tags		活动
//	@Produce	json
//	@Param		id	path		int	true	"活动 ID"
//	@Success	200	{object}	model.Event
//	@Failure	404	{object}	types.ErrorResponse
//	@Router		/api/v1/events/{id} [get]
func GetEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewEventService(c.Request.Context())
	rec, err := svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// DeleteEvent 删除活动并回收其配图.
//
//	@Summary	删除活动
//	@Tags		活动
//	@Produce	json
//	@Param		id	path		int	true	"活动 ID"
//	@Success	200	{object}	types.MessageResponse
//	@Failure	404	{object}	types.ErrorResponse
//	@Router		/api/v1/events/{id} [delete]
func DeleteEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewEventService(c.Request.Context())
	if err := svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
