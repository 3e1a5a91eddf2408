// Package middleware 提供 Gin 中间件：认证、日志、指标、限流、熔断、追踪与依赖注入.
package middleware

import (
	stdctx "context"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/schoolvault/pkg/context"
	"github.com/yeisme/schoolvault/pkg/internal/storage"
	"github.com/yeisme/schoolvault/pkg/scheduler"
)

// StorageMiddleware 将存储管理器注入到请求 context 中.
func StorageMiddleware(manager *storage.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithStorageManager(c.Request.Context(), manager)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

type schedulerKey struct{}

// SchedulerMiddleware 将scheduler注入到context中.
func SchedulerMiddleware(sched *scheduler.Scheduler) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := stdctx.WithValue(c.Request.Context(), schedulerKey{}, sched)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetScheduler 从context中获取scheduler.
func GetScheduler(c *gin.Context) *scheduler.Scheduler {
	if sched, ok := c.Request.Context().Value(schedulerKey{}).(*scheduler.Scheduler); ok {
		return sched
	}

	return nil
}
