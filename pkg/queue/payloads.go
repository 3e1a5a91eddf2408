package queue

import "time"

// EventHeader 定义所有事件的通用头部元数据.
// 建议在发布消息时填充 TraceID、OccurredAt、Producer 等，便于追踪链路与审计.
type EventHeader struct {
	// Topic 冗余记录消息主题，便于离线处理或转储后定位来源主题.
	Topic string `json:"topic"`
	// TraceID 分布式追踪/关联 ID，可来自中间件或业务生成.
	TraceID string `json:"trace_id,omitempty"`
	// Producer 生产者服务名或节点标识.
	Producer string `json:"producer,omitempty"`
	// OccurredAt 事件发生时间（UTC，RFC3339）.
	OccurredAt time.Time `json:"occurred_at"`
	// Version 事件负载版本，便于向后兼容演进.
	Version string `json:"version,omitempty"`
}

// Message 是统一的消息封装，Header + Payload.
// T 即不同主题对应的负载结构体.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// -------------------------- 门户内容领域 --------------------------

// ContentRef 标识一条门户内容记录.
type ContentRef struct {
	Type  string `json:"type"` // news/event/album/result/student/teacher
	ID    uint   `json:"id"`
	Title string `json:"title,omitempty"`
}

// ContentEventPayload 内容创建/更新/删除的统一负载.
type ContentEventPayload struct {
	Content ContentRef `json:"content"`
	// Actor 触发操作的管理员用户名，可选.
	Actor string `json:"actor,omitempty"`
}

// AlbumPhotoAddedPayload 照片追加到相册.
type AlbumPhotoAddedPayload struct {
	AlbumID  uint     `json:"album_id"`
	Title    string   `json:"title,omitempty"`
	Added    []string `json:"added"`     // 新增照片 URL
	PhotoNum int      `json:"photo_num"` // 追加后的照片总数
}

// -------------------------- 上传文件领域 --------------------------

// UploadRef 标识一个已存储的上传文件.
type UploadRef struct {
	StorageKey  string `json:"storage_key"`            // 存储键，如 images/logo_01J....png
	URL         string `json:"url"`                    // 公开访问地址
	Category    string `json:"category"`               // image/document
	Strategy    string `json:"strategy"`               // local/s3
	Size        int64  `json:"size,omitempty"`         // 字节数
	ContentType string `json:"content_type,omitempty"` // MIME 类型
}

// UploadStoredPayload 文件写入存储后端完成.
type UploadStoredPayload struct {
	Upload UploadRef `json:"upload"`
	// FileName 上传时的原始文件名.
	FileName string `json:"file_name,omitempty"`
}

// UploadRemovedPayload 文件从存储后端删除.
type UploadRemovedPayload struct {
	Upload UploadRef `json:"upload"`
	// Reason 删除原因：detach（内容删除联动）/orphan-sweep（定时清理）.
	Reason string `json:"reason,omitempty"`
}
