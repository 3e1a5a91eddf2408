package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/schoolvault/pkg/metrics"
)

// PrometheusMiddleware Prometheus监控中间件.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		// 执行下一个中间件/处理器
		c.Next()

		// 使用路由模板而非原始路径，避免 /news/123 这类路径导致标签爆炸
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		// 记录请求计数
		metrics.RequestCounter.WithLabelValues(method, endpoint).Inc()

		// 记录请求持续时间
		duration := time.Since(start).Seconds()
		metrics.RequestDuration.WithLabelValues(method, endpoint).Observe(duration)
	}
}
