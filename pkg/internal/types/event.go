package types

// CreateEventRequest 活动创建请求 (multipart 表单).
type CreateEventRequest struct {
	Title       string `form:"title"       rule:"required,max=512"` // 标题
	Description string `form:"description" rule:"max=4096"`         // 简介
	EventDate   string `form:"eventDate"   rule:"required"`         // 活动时间 (RFC3339 或 2006-01-02)
	Location    string `form:"location"    rule:"max=255"`          // 地点，缺省 School Premises
}
