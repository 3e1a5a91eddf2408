// Package api 负责把 HTTP 路由组挂载到 gin 引擎.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/schoolvault/pkg/configs"
	"github.com/yeisme/schoolvault/pkg/internal/router"
	"github.com/yeisme/schoolvault/pkg/middleware"
)

// RegisterGroup 注册 /api/v1 路由组及其余外围路由（本地上传静态目录、swagger）.
// 熔断只罩业务 API，不影响静态文件与文档.
func RegisterGroup(e *gin.Engine, authMW gin.HandlerFunc) *gin.Engine {
	cfg := configs.GetConfig()

	apiGroup := e.Group("/api/v1", middleware.CircuitBreakerMiddleware(cfg.CircuitBreaker))
	router.RegisterAPIRoutes(apiGroup, authMW)

	router.RegisterUploadsRoute(e)
	router.RegisterSwaggerRoute(e)

	return e
}
