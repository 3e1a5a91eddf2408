package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/schoolvault/pkg/internal/service"
	"github.com/yeisme/schoolvault/pkg/internal/types"
)

// CreateTeacher 创建教师记录.
//
//	@Summary		创建教师记录
//	@Description	创建一条教师记录，邮箱全局唯一
//	@Tags			教师
//	@Accept			json
//	@Produce		json
//	@Param			teacher	body		types.CreateTeacherRequest	true	"教师信息"
//	@Success		201		{object}	model.Teacher
//	@Failure		400		{object}	types.ErrorResponse
//	@Failure		409		{object}	types.ErrorResponse
//	@Router			/api/v1/teachers [post]
func CreateTeacher(c *gin.Context) {
	var req types.CreateTeacherRequest
	if !bindValidated(c, &req) {
		return
	}

	svc := service.NewTeacherService(c.Request.Context())
	rec, err := svc.Create(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// ListTeachers 教师列表.
//
//	@Summary	教师列表
//	@Tags		教师
//	@Produce	json
//	@Success	200	{array}	model.Teacher
//	@Router		/api/v1/teachers [get]
func ListTeachers(c *gin.Context) {
	svc := service.NewTeacherService(c.Request.Context())
	list, err := svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetTeacher 按 ID 查询教师记录.
//
//	@Summary	查询教师记录
//	@Tags		教师
//	@Produce	json
//	@Param		id	path		int	true	"教师 ID"
//	@Success	200	{object}	model.Teacher
//	@Failure	404	{object}	types.ErrorResponse
//	@Router		/api/v1/teachers/{id} [get]
func GetTeacher(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewTeacherService(c.Request.Context())
	rec, err := svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// DeleteTeacher 删除教师记录.
//
//	@Summary	删除教师记录
//	@Tags		教师
//	@Produce	json
//	@Param		id	path		int	true	"教师 ID"
//	@Success	200	{object}	types.MessageResponse
//	@Failure	404	{object}	types.ErrorResponse
//	@Router		/api/v1/teachers/{id} [delete]
func DeleteTeacher(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewTeacherService(c.Request.Context())
	if err := svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
