package service

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeisme/schoolvault/pkg/configs"
	"github.com/yeisme/schoolvault/pkg/internal/model"
	"github.com/yeisme/schoolvault/pkg/internal/storage/db"
	"github.com/yeisme/schoolvault/pkg/internal/upload"
)

// newTestDeps 构建基于临时 SQLite 与本地磁盘存储的测试依赖.
// 返回的目录即本地存储根，用于断言文件落盘与回收.
func newTestDeps(t *testing.T) (*deps, string) {
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

	return &deps{
		dbClient: &db.Client{DB: gdb},
		uploader: adapter,
	}, uploadDir
}

// newFileHeader 构造一个带内容的 multipart.FileHeader.
func newFileHeader(t *testing.T, name, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

// storedKeys 列出本地存储里的全部对象键.
func storedKeys(t *testing.T, d *deps) []string {
	t.Helper()

	objects, err := d.uploader.Store().List(t.Context())
	if err != nil {
		t.Fatalf("list store: %v", err)
	}

	keys := make([]string, 0, len(objects))
	for _, o := range objects {
		keys = append(keys, o.Key)
	}
	return keys
}
