package jobs

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeisme/schoolvault/pkg/configs"
	"github.com/yeisme/schoolvault/pkg/internal/model"
	"github.com/yeisme/schoolvault/pkg/internal/storage"
	"github.com/yeisme/schoolvault/pkg/internal/storage/db"
	"github.com/yeisme/schoolvault/pkg/internal/upload"
)

func newTestManager(t *testing.T) (*storage.Manager, *upload.Adapter, string) {
	t.Helper()

	dir := t.TempDir()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(dir, "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(model.AllModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	uploadDir := filepath.Join(dir, "uploads")
	adapter, err := upload.NewAdapter(configs.UploadConfig{
		Strategy:     configs.UploadStrategyLocal,
		MaxSizeBytes: 1 << 20,
		LocalDir:     uploadDir,
		BaseURL:      "http://localhost:8080",
	}, time.Second, nil)
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}

	return &storage.Manager{DB: &db.Client{DB: gdb}}, adapter, uploadDir
}

func saveObject(t *testing.T, adapter *upload.Adapter, key string) {
	t.Helper()

	if _, err := adapter.Store().Save(t.Context(), key, strings.NewReader("data"), 4, "image/png"); err != nil {
		t.Fatalf("save %s: %v", key, err)
	}
}

func TestReferencedStorageKeys(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	ctx := t.Context()
	dbx := mgr.GetDBClient().GetDB()

	if err := dbx.Create(&model.News{Title: "n", Content: "c", StorageKey: "images/news_01.png"}).Error; err != nil {
		t.Fatalf("create news: %v", err)
	}
	if err := dbx.Create(&model.Result{Title: "r", StorageKey: "documents/result_01.pdf"}).Error; err != nil {
		t.Fatalf("create result: %v", err)
	}

	album := model.Album{Title: "a", StorageKey: "images/cover_01.png"}
	if err := album.SetPhotos([]model.AlbumImage{
		{Src: "http://x/p1.png", StorageKey: "images/p1_01.png"},
		{Src: "https://external.example/p.png"}, // 外链照片没有存储键
	}); err != nil {
		t.Fatalf("set photos: %v", err)
	}
	if err := dbx.Create(&album).Error; err != nil {
		t.Fatalf("create album: %v", err)
	}

	referenced, err := referencedStorageKeys(ctx, mgr)
	if err != nil {
		t.Fatalf("referencedStorageKeys: %v", err)
	}

	for _, key := range []string{
		"images/news_01.png",
		"documents/result_01.pdf",
		"images/cover_01.png",
		"images/p1_01.png",
	} {
		if !referenced[key] {
			t.Errorf("key %s not collected", key)
		}
	}
	if len(referenced) != 4 {
		t.Errorf("expected 4 keys, got %d: %v", len(referenced), referenced)
	}
}

func TestSweepOrphans(t *testing.T) {
	mgr, adapter, _ := newTestManager(t)
	ctx := t.Context()

	// 被引用的文件
	saveObject(t, adapter, "images/kept_01.png")
	if err := mgr.GetDBClient().GetDB().Create(&model.News{
		Title: "n", Content: "c", StorageKey: "images/kept_01.png",
	}).Error; err != nil {
		t.Fatalf("create news: %v", err)
	}

	// 无人引用的文件
	saveObject(t, adapter, "images/orphan_01.png")

	// 宽限期内不动任何文件
	scanned, removed, err := sweepOrphans(ctx, mgr, adapter, time.Hour)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if scanned != 2 || removed != 0 {
		t.Errorf("grace period violated: scanned=%d removed=%d", scanned, removed)
	}

	// 宽限期为零时清掉孤儿，保留被引用的
	_, removed, err = sweepOrphans(ctx, mgr, adapter, 0)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if removed != 1 {
		t.Errorf("expected 1 removed, got %d", removed)
	}

	objects, err := adapter.Store().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(objects) != 1 || objects[0].Key != "images/kept_01.png" {
		t.Errorf("unexpected survivors: %+v", objects)
	}
}

func TestEventsSnapshotQuery(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	dbx := mgr.GetDBClient().GetDB()

	if err := dbx.Create(&model.Event{Title: "Past", EventDate: time.Now().Add(-time.Hour)}).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	next := model.Event{Title: "Next", EventDate: time.Now().Add(time.Hour)}
	if err := dbx.Create(&next).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := dbx.Create(&model.Event{Title: "Later", EventDate: time.Now().Add(48 * time.Hour)}).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	// 快照任务不依赖缓存，KV 为 nil 时只记录日志
	runEventsSnapshot(t.Context(), mgr)

	var upcoming []model.Event
	if err := dbx.Where("event_date >= ?", time.Now()).Order("event_date ASC").Find(&upcoming).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(upcoming) != 2 || upcoming[0].Title != "Next" {
		t.Errorf("unexpected upcoming: %+v", upcoming)
	}
}
