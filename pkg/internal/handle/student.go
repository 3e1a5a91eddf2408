package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/schoolvault/pkg/internal/service"
	"github.com/yeisme/schoolvault/pkg/internal/types"
)

// CreateStudent 创建学籍记录.
//
//	@Summary		创建学籍记录
//	@Description	创建一条学籍记录，入学编号全局唯一
//	@Tags			学籍
//	@Accept			json
//	@Produce		json
//	@Param			student	body		types.CreateStudentRequest	true	"学籍信息"
//	@Success		201		{object}	model.Student
//	@Failure		400		{object}	types.ErrorResponse
//	@Failure		409		{object}	types.ErrorResponse
//	@Router			/api/v1/students [post]
func CreateStudent(c *gin.Context) {
	var req types.CreateStudentRequest
	if !bindValidated(c, &req) {
		return
	}

	svc := service.NewStudentService(c.Request.Context())
	rec, err := svc.Create(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// ListStudents 学籍列表.
//
//	@Summary	学籍列表
//	@Tags		学籍
//	@Produce	json
//	@Success	200	{array}	model.Student
//	@Router		/api/v1/students [get]
func ListStudents(c *gin.Context) {
	svc := service.NewStudentService(c.Request.Context())
	list, err := svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetStudent 按 ID 查询学籍记录.
//
//	@Summary	查询学籍记录
//	@Tags		学籍
//	@Produce	json
//	@Param		id	path		int	true	"学籍 ID"
//	@Success	200	{object}	model.Student
//	@Failure	404	{object}	types.ErrorResponse
//	@Router		/api/v1/students/{id} [get]
func GetStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewStudentService(c.Request.Context())
	rec, err := svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// DeleteStudent 删除学籍记录.
//
//	@Summary	删除学籍记录
//	@Tags		学籍
//	@Produce	json
//	@Param		id	path		int	true	"学籍 ID"
//	@Success	200	{object}	types.MessageResponse
//	@Failure	404	{object}	types.ErrorResponse
//	@Router		/api/v1/students/{id} [delete]
func DeleteStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewStudentService(c.Request.Context())
	if err := svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
