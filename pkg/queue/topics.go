// Package queue 定义消息主题常量与分组，供发布/订阅使用.
package queue

// 主题命名规范：sv.<域>.<动作>，尽量稳定且向后兼容.
// 域：content(新闻/活动/相册等门户内容)、upload(上传文件生命周期)
// 动作：created/updated/deleted、stored/removed

const (
	// 门户内容领域.
	TopicContentCreated = "sv.content.created" // 内容创建完成（新闻、活动、相册、成绩等）
	TopicContentUpdated = "sv.content.updated" // 内容更新完成
	TopicContentDeleted = "sv.content.deleted" // 内容删除完成

	// 相册照片细分主题.
	TopicAlbumPhotoAdded = "sv.album.photo.added" // 照片追加到相册

	// 上传文件领域.
	TopicUploadStored  = "sv.upload.stored"  // 文件已写入存储后端
	TopicUploadRemoved = "sv.upload.removed" // 文件从存储后端删除（含孤儿清理）
)

// 主题分组，用于批量订阅或权限控制.
var (
	// 门户内容相关主题集合.
	ContentTopics = []string{
		TopicContentCreated, TopicContentUpdated, TopicContentDeleted,
		TopicAlbumPhotoAdded,
	}

	// 上传文件相关主题集合.
	UploadTopics = []string{
		TopicUploadStored, TopicUploadRemoved,
	}
)
