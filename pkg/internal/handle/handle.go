// Package handle 提供 HTTP 请求处理器的实现，参数绑定与校验在这一层完成，
// 业务逻辑委托给 service.
package handle

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/schoolvault/pkg/internal/service"
	"github.com/yeisme/schoolvault/pkg/internal/upload"
	"github.com/yeisme/schoolvault/pkg/log"
	"github.com/yeisme/schoolvault/pkg/rule"
)

// bindValidated 绑定请求并跑 rule 标签校验，失败时写好 400 响应.
func bindValidated(c *gin.Context, req any) bool {
	if err := c.ShouldBind(req); err != nil {
		log.Logger().Warn().Err(err).Str("path", c.FullPath()).Msg("invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return false
	}

	if err := rule.ValidateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": rule.Errors(err)})

		return false
	}

	return true
}

// pathID 解析路径里的数字 ID，失败时写好 400 响应.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})

		return 0, false
	}

	return uint(id), true
}

// writeServiceError 把业务错误映射为 HTTP 状态码.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, service.ErrConcurrentUpdate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials"})
	case errors.Is(err, service.ErrBadInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, upload.ErrFileTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	case errors.Is(err, upload.ErrUnsupportedType):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
	case errors.Is(err, upload.ErrEmptyFile):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Logger().Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// optionalFile 取可选的表单文件，缺失返回 nil.
func optionalFile(c *gin.Context, field string) *multipart.FileHeader {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil
	}

	return fh
}
