package service

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"gorm.io/gorm"

	"github.com/yeisme/schoolvault/pkg/cache"
	"github.com/yeisme/schoolvault/pkg/internal/upload"
	nlog "github.com/yeisme/schoolvault/pkg/log"
	"github.com/yeisme/schoolvault/pkg/queue"
)

// listCacheTTL 列表查询的缓存时长.
const listCacheTTL = 30 * time.Second

// resource 内容资源的泛型引擎：增删查列，统一处理列表缓存、
// 事件发布与上传产物回收，各内容服务在其上组装.
type resource[T any] struct {
	*deps
	name      string                  // 资源名，用作缓存键与事件里的内容类型
	listScope func(*gorm.DB) *gorm.DB // 列表的过滤与排序
	keysOf    func(*T) []string       // 删除记录时要回收的存储键
	refOf     func(*T) queue.ContentRef
}

func (r *resource[T]) listKey() string { return "list:" + r.name }

// Create 写入记录并失效列表缓存.
func (r *resource[T]) Create(ctx context.Context, rec *T) error {
	if err := r.dbClient.WithContext(ctx).Create(rec).Error; err != nil {
		return translateDBError(err)
	}

	r.invalidateList(ctx)
	r.emit(queue.PublishContentCreated, rec)

	return nil
}

// List 返回全部记录，经 listScope 过滤排序，结果短暂缓存.
func (r *resource[T]) List(ctx context.Context) ([]T, error) {
	getter := func() ([]T, error) {
		q := r.dbClient.WithContext(ctx)
		if r.listScope != nil {
			q = r.listScope(q)
		}

		recs := make([]T, 0)
		if err := q.Find(&recs).Error; err != nil {
			return nil, err
		}

		return recs, nil
	}

	if r.kvCache == nil {
		return getter()
	}

	return cache.GetOrSet(ctx, r.kvCache, r.listKey(), getter, listCacheTTL)
}

// Get 按主键查询单条记录.
func (r *resource[T]) Get(ctx context.Context, id uint) (*T, error) {
	var rec T
	if err := r.dbClient.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, translateDBError(err)
	}

	return &rec, nil
}

// Delete 删除记录并回收其上传产物.
// 数据库删除成功后存储清理失败只告警，残留交给孤儿清理任务兜底.
func (r *resource[T]) Delete(ctx context.Context, id uint) error {
	var rec T
	if err := r.dbClient.WithContext(ctx).First(&rec, id).Error; err != nil {
		return translateDBError(err)
	}

	if err := r.dbClient.WithContext(ctx).Delete(&rec).Error; err != nil {
		return translateDBError(err)
	}

	r.invalidateList(ctx)

	if r.keysOf != nil && r.uploader != nil {
		for _, key := range r.keysOf(&rec) {
			if key == "" {
				continue
			}

			if err := r.uploader.Remove(ctx, key); err != nil {
				nlog.Logger().Warn().Err(err).
					Str("resource", r.name).
					Str("storage_key", key).
					Msg("删除记录后回收文件失败")

				continue
			}

			r.emitUploadRemoved(key, "detach")
		}
	}

	r.emit(queue.PublishContentDeleted, &rec)

	return nil
}

// invalidateList 失效列表缓存，失败只告警（过期兜底）.
func (r *resource[T]) invalidateList(ctx context.Context) {
	if r.kvCache == nil {
		return
	}

	if err := r.kvCache.Delete(ctx, r.listKey()); err != nil {
		nlog.Logger().Warn().Err(err).Str("resource", r.name).Msg("列表缓存失效失败")
	}
}

// processUpload 上传文件并发布 sv.upload.stored 事件.
func (d *deps) processUpload(ctx context.Context, fh *multipart.FileHeader, category upload.Category) (*upload.Descriptor, error) {
	desc, err := d.uploader.Process(ctx, fh, category)
	if err != nil {
		return nil, err
	}

	if pub := d.publisher(); pub != nil {
		payload := queue.UploadStoredPayload{Upload: uploadRef(desc), FileName: desc.FileName}
		if err := queue.PublishUploadStored(pub, payload); err != nil {
			nlog.Logger().Warn().Err(err).Str("storage_key", desc.StorageKey).Msg("上传事件发布失败")
		}
	}

	return desc, nil
}

// discardUpload 回收一次已落盘但未被记录引用的上传.
func (d *deps) discardUpload(ctx context.Context, desc *upload.Descriptor) {
	if err := d.uploader.Remove(ctx, desc.StorageKey); err != nil {
		nlog.Logger().Warn().Err(err).Str("storage_key", desc.StorageKey).Msg("回收未引用上传失败")
		return
	}

	if pub := d.publisher(); pub != nil {
		payload := queue.UploadRemovedPayload{Upload: uploadRef(desc), Reason: "detach"}
		_ = queue.PublishUploadRemoved(pub, payload)
	}
}

func (d *deps) publisher() message.Publisher {
	if d.mqClient == nil {
		return nil
	}

	return d.mqClient.Publisher()
}

// emit 发布一条内容事件，发布失败不影响主流程.
func (r *resource[T]) emit(fn func(message.Publisher, queue.ContentEventPayload, ...func(*queue.EventHeader)) error, rec *T) {
	pub := r.publisher()
	if pub == nil || r.refOf == nil {
		return
	}

	if err := fn(pub, queue.ContentEventPayload{Content: r.refOf(rec)}); err != nil {
		nlog.Logger().Warn().Err(err).Str("resource", r.name).Msg("内容事件发布失败")
	}
}

func (r *resource[T]) emitUploadRemoved(key, reason string) {
	pub := r.publisher()
	if pub == nil {
		return
	}

	payload := queue.UploadRemovedPayload{Upload: queue.UploadRef{StorageKey: key}, Reason: reason}
	_ = queue.PublishUploadRemoved(pub, payload)
}

func uploadRef(desc *upload.Descriptor) queue.UploadRef {
	return queue.UploadRef{
		StorageKey:  desc.StorageKey,
		URL:         desc.URL,
		Category:    string(desc.Category),
		Strategy:    string(desc.Strategy),
		Size:        desc.Size,
		ContentType: desc.ContentType,
	}
}
