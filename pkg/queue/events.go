package queue

import "github.com/ThreeDotsLabs/watermill/message"

// -------------------------- 基于业务封装 events --------------------------

// PublishContentCreated 发布 sv.content.created 事件。
// 在内容写入数据库成功后调用，通知下游流程（如缓存失效、站点地图刷新等）。
// 可通过可选项 opts 注入 TraceID、Producer 等头部信息。
func PublishContentCreated(pub message.Publisher, payload ContentEventPayload, opts ...func(*EventHeader)) error {
	return publish(pub, TopicContentCreated, payload, opts...)
}

// PublishContentUpdated 发布 sv.content.updated 事件。
func PublishContentUpdated(pub message.Publisher, payload ContentEventPayload, opts ...func(*EventHeader)) error {
	return publish(pub, TopicContentUpdated, payload, opts...)
}

// PublishContentDeleted 发布 sv.content.deleted 事件。
func PublishContentDeleted(pub message.Publisher, payload ContentEventPayload, opts ...func(*EventHeader)) error {
	return publish(pub, TopicContentDeleted, payload, opts...)
}

// PublishAlbumPhotoAdded 发布 sv.album.photo.added 事件。
func PublishAlbumPhotoAdded(pub message.Publisher, payload AlbumPhotoAddedPayload, opts ...func(*EventHeader)) error {
	return publish(pub, TopicAlbumPhotoAdded, payload, opts...)
}

// PublishUploadStored 发布 sv.upload.stored 事件。
// 文件落盘或写入对象存储后触发，供统计与审计使用。
func PublishUploadStored(pub message.Publisher, payload UploadStoredPayload, opts ...func(*EventHeader)) error {
	return publish(pub, TopicUploadStored, payload, opts...)
}

// PublishUploadRemoved 发布 sv.upload.removed 事件。
func PublishUploadRemoved(pub message.Publisher, payload UploadRemovedPayload, opts ...func(*EventHeader)) error {
	return publish(pub, TopicUploadRemoved, payload, opts...)
}

// ParseContentEvent 将 Watermill 消息解析为强类型 Envelope（ContentEventPayload）。
func ParseContentEvent(msg *message.Message) (Message[ContentEventPayload], error) {
	return ParseWatermillMessage[ContentEventPayload](msg)
}

// ParseUploadStored 将 Watermill 消息解析为强类型 Envelope（UploadStoredPayload）。
func ParseUploadStored(msg *message.Message) (Message[UploadStoredPayload], error) {
	return ParseWatermillMessage[UploadStoredPayload](msg)
}

func publish[T any](pub message.Publisher, topic string, payload T, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(topic, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(topic, msg)
}
