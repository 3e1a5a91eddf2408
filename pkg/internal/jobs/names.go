package jobs

// 任务名称常量，便于统一管理与引用.
const (
	JobUploadsOrphanSweep = "uploads.orphan_sweep"
	JobEventsSnapshot     = "events.snapshot"
)

// Cron 表达式常量.
const (
	CronUploadsOrphanSweep = "30 3 * * *" // 每天 03:30
	CronEventsSnapshot     = "0 * * * *"  // 每小时整点
)
