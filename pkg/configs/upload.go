package configs

import "github.com/spf13/viper"

// UploadStrategy 上传存储策略.
type UploadStrategy string

const (
	UploadStrategyLocal UploadStrategy = "local" // 本地磁盘存储
	UploadStrategyS3    UploadStrategy = "s3"    // 对象存储
)

const (
	DefaultUploadMaxSizeBytes = 10 << 20             // 单文件大小上限 10MB
	DefaultUploadLocalDir     = "uploads"            // 本地存储目录
	DefaultUploadBaseURL      = "http://localhost:8080" // 本地策略的公开基础地址
	DefaultOrphanGraceHours   = 24                   // 孤儿文件清理宽限期（小时）
)

// UploadConfig 文件上传配置.
type UploadConfig struct {
	Strategy     UploadStrategy `mapstructure:"strategy"       rule:"oneof=local s3"`
	MaxSizeBytes int64          `mapstructure:"max_size_bytes" rule:"min=1"`
	// 本地策略：磁盘目录与对外基础地址
	LocalDir string `mapstructure:"local_dir"`
	BaseURL  string `mapstructure:"base_url"`
	// OrphanGraceHours 孤儿清理任务只处理早于该宽限期的文件
	OrphanGraceHours int `mapstructure:"orphan_grace_hours" rule:"min=1"`
}

// setDefaults 设置上传配置的默认值.
func (c *UploadConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("upload.strategy", UploadStrategyLocal)
	v.SetDefault("upload.max_size_bytes", DefaultUploadMaxSizeBytes)
	v.SetDefault("upload.local_dir", DefaultUploadLocalDir)
	v.SetDefault("upload.base_url", DefaultUploadBaseURL)
	v.SetDefault("upload.orphan_grace_hours", DefaultOrphanGraceHours)
}
