package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/schoolvault/pkg/internal/service"
	"github.com/yeisme/schoolvault/pkg/internal/types"
)

// CreateResult 创建成绩公告.
//
//	@Summary		创建成绩公告
//	@Description	创建一条成绩公告，成绩文件必填（multipart 的 file 字段，PDF/Word）
//	@Tags			成绩
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			title	formData	string	true	"标题"
//	@Param			grade	formData	string	true	"年级/班级"
//	@Param			date	formData	string	false	"展示日期"
//	@Param			file	formData	file	true	"成绩文件"
//	@Success		201		{object}	model.Result
//	@Failure		400		{object}	types.ErrorResponse
//	@Failure		415		{object}	types.ErrorResponse
//	@Router			/api/v1/results [post]
func CreateResult(c *gin.Context) {
	var req types.CreateResultRequest
	if !bindValidated(c, &req) {
		return
	}

	svc := service.NewResultService(c.Request.Context())
	rec, err := svc.Create(c.Request.Context(), &req, optionalFile(c, "file"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// ListResults 成绩公告列表.
//
//	@Summary	成绩公告列表
//	@Tags		成绩
//	@Produce	json
//	@Success	200	{array}	model.Result
//	@Router		/api/v1/results [get]
func ListResults(c *gin.Context) {
	svc := service.NewResultService(c.Request.Context())
	list, err := svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetResult 按 ID 查询成绩公告.
//
//	@Summary	查询成绩公告
//	@Tags		成绩
//	@Produce	json
//	@Param		id	path		int	true	"成绩公告 ID"
//	@Success	200	{object}	model.Result
//	@Failure	404	{object}	types.ErrorResponse
//	@Router		/api/v1/results/{id} [get]
func GetResult(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewResultService(c.Request.Context())
	rec, err := svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// DeleteResult 删除成绩公告并回收其文件.
//
//	@Summary	删除成绩公告
//	@Tags		成绩
//	@Produce	json
//	@Param		id	path		int	true	"成绩公告 ID"
//	@Success	200	{object}	types.MessageResponse
//	@Failure	404	{object}	types.ErrorResponse
//	@Router		/api/v1/results/{id} [delete]
func DeleteResult(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewResultService(c.Request.Context())
	if err := svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
