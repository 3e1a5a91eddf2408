package configs

import "github.com/spf13/viper"

const (
	DefaultAuthTokenTTLHours = 24 * 30 // 管理端 token 有效期（30 天，沿用门户的长会话习惯）
)

// AuthConfig 管理端认证配置（JWT Bearer）。
type AuthConfig struct {
	Enabled       bool     `mapstructure:"enabled"`         // 开启认证校验
	Secret        string   `mapstructure:"secret"`          // JWT 签名密钥
	TokenTTLHours int      `mapstructure:"token_ttl_hours"` // token 有效期（小时）
	SkipPaths     []string `mapstructure:"skip_paths"`      // 跳过认证的路径前缀
}

func (c *AuthConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("auth.enabled", true)
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.token_ttl_hours", DefaultAuthTokenTTLHours)
	v.SetDefault("auth.skip_paths", []string{
		"/metrics",
		"/debug/pprof",
		"/api/v1/health",
		"/swagger",
		"/uploads",
	})
}
