package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/schoolvault/pkg/internal/handle"
)

// RegisterAdminRoutes 注册管理员注册与登录路由，两者都公开.
func RegisterAdminRoutes(g *gin.RouterGroup) {
	adminRoutes := g.Group("/admin")
	{
		adminRoutes.POST("/register", handle.AdminRegister)
		adminRoutes.POST("/login", handle.AdminLogin)
	}
}
