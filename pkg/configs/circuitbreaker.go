package configs

import (
	"time"

	"github.com/spf13/viper"
)

// CircuitBreakerConfig 熔断器配置.
type CircuitBreakerConfig struct {
	Enabled     bool          `mapstructure:"enabled"`      // 是否启用熔断器
	MaxRequests uint32        `mapstructure:"max_requests"` // 半开状态下允许的最大请求数
	Interval    time.Duration `mapstructure:"interval"`     // 闭合状态下计数器清零周期
	Timeout     time.Duration `mapstructure:"timeout"`      // 打开状态持续时间
	MinRequests uint32        `mapstructure:"min_requests"` // 触发熔断评估的最小请求数
	FailureRate float64       `mapstructure:"failure_rate"` // 触发熔断的失败率阈值
}

// setDefaults 设置熔断器配置的默认值.
func (c *CircuitBreakerConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("circuit_breaker.enabled", false)
	v.SetDefault("circuit_breaker.max_requests", 5)
	v.SetDefault("circuit_breaker.interval", "60s")
	v.SetDefault("circuit_breaker.timeout", "30s")
	v.SetDefault("circuit_breaker.min_requests", 10)
	v.SetDefault("circuit_breaker.failure_rate", 0.5)
}
