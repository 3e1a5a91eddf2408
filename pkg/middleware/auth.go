package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/schoolvault/pkg/configs"
	"github.com/yeisme/schoolvault/pkg/internal/auth"
)

// AdminUserKey gin context 中管理员用户名的键.
const AdminUserKey = "admin_user"

// AuthMiddleware 基于 Bearer JWT 的管理端认证校验。
//   - Authorization: Bearer <token>，由 /admin/login 签发
//   - 支持通过配置跳过某些路径（如 /metrics, /uploads, swagger）
//   - 校验通过后把管理员用户名写入 gin context，供审计使用.
func AuthMiddleware(conf configs.AuthConfig, authenticator auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !conf.Enabled || isSkippedPath(c.Request.URL.Path, conf.SkipPaths) {
			c.Next()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

			return
		}

		username, err := authenticator.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

			return
		}

		c.Set(AdminUserKey, username)
		c.Next()
	}
}

func isSkippedPath(path string, skips []string) bool {
	if path == "" || len(skips) == 0 {
		return false
	}

	for _, p := range skips {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if strings.HasPrefix(path, p) {
			return true
		}
	}

	return false
}
