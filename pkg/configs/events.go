package configs

import "github.com/spf13/viper"

// EventsConfig 控制内容事件发布的开关（全局与分领域）。
type EventsConfig struct {
	Enabled bool                `mapstructure:"enabled"` // 总开关
	Content ContentEventsConfig `mapstructure:"content"`
	Upload  UploadEventsConfig  `mapstructure:"upload"`
}

// ContentEventsConfig 内容领域的事件开关。
type ContentEventsConfig struct {
	Created bool `mapstructure:"created"`
	Deleted bool `mapstructure:"deleted"`
}

// UploadEventsConfig 上传领域的事件开关。
type UploadEventsConfig struct {
	Stored  bool `mapstructure:"stored"`
	Removed bool `mapstructure:"removed"`
}

func (c *EventsConfig) setDefaults(v *viper.Viper) {
	// 总开关：默认启用事件系统
	v.SetDefault("events.enabled", true)

	// 内容领域：创建与删除是站点重建的触发点，默认开启
	v.SetDefault("events.content.created", true)
	v.SetDefault("events.content.deleted", true)

	// 上传领域：默认只开启写入事件
	v.SetDefault("events.upload.stored", true)
	v.SetDefault("events.upload.removed", false)
}
