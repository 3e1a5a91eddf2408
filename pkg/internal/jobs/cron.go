// Package jobs 负责注册与实现业务定时任务（基于 scheduler）。
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/yeisme/schoolvault/pkg/cache"
	"github.com/yeisme/schoolvault/pkg/configs"
	ctxPkg "github.com/yeisme/schoolvault/pkg/context"
	"github.com/yeisme/schoolvault/pkg/internal/model"
	"github.com/yeisme/schoolvault/pkg/internal/storage"
	"github.com/yeisme/schoolvault/pkg/internal/upload"
	"github.com/yeisme/schoolvault/pkg/log"
	"github.com/yeisme/schoolvault/pkg/queue"
	"github.com/yeisme/schoolvault/pkg/scheduler"
)

// EventsSnapshotKey 活动快照的缓存键.
const EventsSnapshotKey = "snapshot:events"

// eventsSnapshotTTL 快照缓存时长，下一次整点任务会覆盖.
const eventsSnapshotTTL = 2 * time.Hour

// RegisterCronJobs 配置业务定时任务：
//   - 每天 03:30 清理存储后端里未被任何记录引用的孤儿文件
//   - 每小时整点生成一份即将举行活动的快照并写入缓存
func RegisterCronJobs(sched *scheduler.Scheduler, mgr *storage.Manager) error {
	if sched == nil {
		return fmt.Errorf("scheduler is nil")
	}

	if mgr == nil {
		return fmt.Errorf("storage manager is nil")
	}

	// 将 storage manager 注入到 context，便于任务使用
	baseCtx := ctxPkg.WithStorageManager(context.Background(), mgr)

	_ = sched.AddCron(baseCtx, JobUploadsOrphanSweep, CronUploadsOrphanSweep, func(ctx context.Context) {
		runOrphanSweep(ctx, mgr)
	})

	_ = sched.AddCron(baseCtx, JobEventsSnapshot, CronEventsSnapshot, func(ctx context.Context) {
		runEventsSnapshot(ctx, mgr)
	})

	return nil
}

// runOrphanSweep 对账存储后端与数据库：删除存在于存储但不被任何记录引用、
// 且早于宽限期的对象。宽限期保护刚上传、记录还没落库的文件.
func runOrphanSweep(ctx context.Context, mgr *storage.Manager) {
	l := log.Logger().With().Str("job", JobUploadsOrphanSweep).Logger()

	cfg := configs.GetConfig()
	adapter, err := upload.NewAdapter(cfg.Upload, cfg.Server.GetTimeoutDuration(), mgr.GetS3Client())
	if err != nil {
		l.Error().Err(err).Msg("upload adapter init failed")
		return
	}

	grace := time.Duration(cfg.Upload.OrphanGraceHours) * time.Hour
	scanned, removed, err := sweepOrphans(ctx, mgr, adapter, grace)
	if err != nil {
		l.Error().Err(err).Msg("orphan sweep failed")
		return
	}

	l.Info().Int("scanned", scanned).Int("removed", removed).Msg("orphan sweep done")
}

// sweepOrphans 执行一轮对账，返回扫描与删除的对象数.
func sweepOrphans(ctx context.Context, mgr *storage.Manager, adapter *upload.Adapter, grace time.Duration) (scanned, removed int, err error) {
	referenced, err := referencedStorageKeys(ctx, mgr)
	if err != nil {
		return 0, 0, fmt.Errorf("collect referenced keys: %w", err)
	}

	objects, err := adapter.Store().List(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("list stored objects: %w", err)
	}

	cutoff := time.Now().Add(-grace)

	for _, obj := range objects {
		if referenced[obj.Key] || obj.LastModified.After(cutoff) {
			continue
		}

		if err := adapter.Remove(ctx, obj.Key); err != nil {
			log.Logger().Warn().Err(err).Str("key", obj.Key).Msg("remove orphan failed")
			continue
		}

		removed++

		if mqc := mgr.GetMQClient(); mqc != nil {
			payload := queue.UploadRemovedPayload{
				Upload: queue.UploadRef{StorageKey: obj.Key, Size: obj.Size},
				Reason: "orphan-sweep",
			}
			_ = queue.PublishUploadRemoved(mqc.Publisher(), payload)
		}
	}

	return len(objects), removed, nil
}

// referencedStorageKeys 收集数据库里全部有效的存储键：
// 四类带文件的内容记录的 storage_key，加上相册照片数组里的键.
func referencedStorageKeys(ctx context.Context, mgr *storage.Manager) (map[string]bool, error) {
	if mgr.GetDBClient() == nil || mgr.GetDBClient().GetDB() == nil {
		return nil, fmt.Errorf("db not initialized")
	}

	dbx := mgr.GetDBClient().GetDB().WithContext(ctx)
	referenced := make(map[string]bool)

	for _, m := range []any{&model.News{}, &model.Event{}, &model.Result{}, &model.Album{}} {
		var keys []string
		if err := dbx.Model(m).Where("storage_key <> ''").Pluck("storage_key", &keys).Error; err != nil {
			return nil, err
		}

		for _, k := range keys {
			referenced[k] = true
		}
	}

	var albums []model.Album
	if err := dbx.Find(&albums).Error; err != nil {
		return nil, err
	}

	for i := range albums {
		photos, err := albums[i].Photos()
		if err != nil {
			// 解析失败的相册跳过，宁可少删
			log.Logger().Warn().Err(err).Uint("album_id", albums[i].ID).Msg("parse album photos failed")
			continue
		}

		for _, p := range photos {
			if p.StorageKey != "" {
				referenced[p.StorageKey] = true
			}
		}
	}

	return referenced, nil
}

// EventsSnapshot 即将举行活动的快照，写入缓存供看板读取.
type EventsSnapshot struct {
	GeneratedAt time.Time `json:"generated_at"`
	Upcoming    int       `json:"upcoming"`
	NextID      uint      `json:"next_id,omitempty"`
	NextTitle   string    `json:"next_title,omitempty"`
	NextDate    time.Time `json:"next_date,omitempty"`
}

// runEventsSnapshot 统计未过期活动并缓存快照.
func runEventsSnapshot(ctx context.Context, mgr *storage.Manager) {
	l := log.Logger().With().Str("job", JobEventsSnapshot).Logger()

	if mgr.GetDBClient() == nil || mgr.GetDBClient().GetDB() == nil {
		l.Error().Msg("db not initialized")
		return
	}

	dbx := mgr.GetDBClient().GetDB().WithContext(ctx)

	var upcoming []model.Event
	if err := dbx.Where("event_date >= ?", time.Now()).Order("event_date ASC").Find(&upcoming).Error; err != nil {
		l.Error().Err(err).Msg("query upcoming events failed")
		return
	}

	snap := EventsSnapshot{GeneratedAt: time.Now(), Upcoming: len(upcoming)}
	if len(upcoming) > 0 {
		snap.NextID = upcoming[0].ID
		snap.NextTitle = upcoming[0].Title
		snap.NextDate = upcoming[0].EventDate
	}

	if kvc := mgr.GetKVClient(); kvc != nil {
		if err := cache.Set(ctx, cache.NewCache(kvc), EventsSnapshotKey, snap, eventsSnapshotTTL); err != nil {
			l.Warn().Err(err).Msg("cache snapshot failed")
		}
	}

	l.Info().Int("upcoming", snap.Upcoming).Str("next", snap.NextTitle).Msg("events snapshot done")
}
