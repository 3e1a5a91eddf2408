// Package router 管理路由配置，只负责把路径绑定到 handle 包的处理器，
// 认证中间件由应用层注入，读接口公开、写接口过认证.
package router

import "github.com/gin-gonic/gin"

// RegisterAPIRoutes 注册 /api/v1 下的全部业务路由.
// authMW 应用到所有写操作（创建、删除、照片追加、调度管理）.
func RegisterAPIRoutes(g *gin.RouterGroup, authMW gin.HandlerFunc) {
	RegisterContentRoutes(g, authMW)
	RegisterAdminRoutes(g)
	RegisterHealthCheckRoute(g)
	RegisterSchedulerRoutes(g, authMW)
}
