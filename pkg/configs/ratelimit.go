package configs

import "github.com/spf13/viper"

// RateLimitConfig 限流配置.
type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"` // 是否启用限流
	RPS     float64 `mapstructure:"rps"`     // 每秒允许的请求数
	Burst   int     `mapstructure:"burst"`   // 突发容量
	Key     string  `mapstructure:"key"`     // 限流维度：global、ip 或 header:<name>
}

// setDefaults 设置限流配置的默认值.
func (c *RateLimitConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.rps", 100.0)
	v.SetDefault("rate_limit.burst", 200)
	v.SetDefault("rate_limit.key", "ip")
}
