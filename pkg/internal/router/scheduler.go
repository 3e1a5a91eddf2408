package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/schoolvault/pkg/internal/handle"
)

// RegisterSchedulerRoutes 注册调度器观测路由，属于管理能力，过 authMW.
func RegisterSchedulerRoutes(g *gin.RouterGroup, authMW gin.HandlerFunc) {
	schedulerRoutes := g.Group("/scheduler")
	{
		schedulerRoutes.GET("/jobs", authMW, handle.SchedulerJobs)
		schedulerRoutes.GET("/jobs/:name", authMW, handle.SchedulerJob)
	}
}
