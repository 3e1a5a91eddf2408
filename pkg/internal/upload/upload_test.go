package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yeisme/schoolvault/pkg/configs"
)

// newFileHeader 构造一个带内容的 multipart.FileHeader.
func newFileHeader(t *testing.T, name, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
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

func testConfig(dir string) configs.UploadConfig {
	return configs.UploadConfig{
		Strategy:     configs.UploadStrategyLocal,
		MaxSizeBytes: 1 << 20,
		LocalDir:     dir,
		BaseURL:      "http://localhost:8080",
	}
}

func TestBuildKeyLayout(t *testing.T) {
	key := BuildKey(CategoryImage, "My Photo (1).JPG")
	if !strings.HasPrefix(key, "images/my-photo-1_") {
		t.Errorf("unexpected key prefix: %s", key)
	}
	if !strings.HasSuffix(key, ".jpg") {
		t.Errorf("extension not lowercased: %s", key)
	}

	key = BuildKey(CategoryDocument, "report.pdf")
	if !strings.HasPrefix(key, "documents/report_") {
		t.Errorf("unexpected key prefix: %s", key)
	}

	// 同名文件生成不同的键
	if BuildKey(CategoryImage, "a.png") == BuildKey(CategoryImage, "a.png") {
		t.Error("keys for identical names must differ")
	}
}

func TestBuildKeyNoTraversal(t *testing.T) {
	key := BuildKey(CategoryImage, "../../etc/passwd")
	if strings.Contains(key, "..") {
		t.Errorf("key contains traversal: %s", key)
	}
	if !strings.HasPrefix(key, "images/") {
		t.Errorf("key escaped category prefix: %s", key)
	}
}

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hello world", "hello-world"},
		{"Hello_World", "hello-world"},
		{"数学成绩表", "file"},
		{"---", "file"},
		{"a...b", "a-b"},
		{strings.Repeat("x", 200), strings.Repeat("x", maxNameLen)},
	}
	for _, c := range cases {
		if got := sanitizeName(c.in); got != c.want {
			t.Errorf("sanitizeName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValidate(t *testing.T) {
	a := newAdapter(NewLocalStore(t.TempDir(), "http://localhost:8080"), testConfig(""), 0)

	if err := a.Validate(newFileHeader(t, "a.png", "image/png", []byte("png")), CategoryImage); err != nil {
		t.Errorf("valid image rejected: %v", err)
	}
	if err := a.Validate(newFileHeader(t, "a.pdf", "application/pdf", []byte("pdf")), CategoryDocument); err != nil {
		t.Errorf("valid document rejected: %v", err)
	}

	// 分类与类型不匹配
	err := a.Validate(newFileHeader(t, "a.pdf", "application/pdf", []byte("pdf")), CategoryImage)
	if err == nil || !strings.Contains(err.Error(), "not allowed") {
		t.Errorf("expected unsupported type error, got %v", err)
	}
	err = a.Validate(newFileHeader(t, "evil.sh", "application/x-sh", []byte("#!")), CategoryDocument)
	if err == nil {
		t.Error("expected unsupported type error for shell script")
	}

	// 超过大小上限
	big := newFileHeader(t, "big.png", "image/png", bytes.Repeat([]byte("x"), int(a.cfg.MaxSizeBytes)+1))
	if err := a.Validate(big, CategoryImage); err == nil {
		t.Error("expected file too large error")
	}

	// 空文件
	if err := a.Validate(newFileHeader(t, "empty.png", "image/png", nil), CategoryImage); err == nil {
		t.Error("expected empty file error")
	}
}

func TestContentTypeFallback(t *testing.T) {
	// Content-Type 头缺失时按扩展名推断
	fh := newFileHeader(t, "photo.png", "", []byte("data"))
	fh.Header.Del("Content-Type")
	if ct := contentTypeOf(fh); ct != "image/png" {
		t.Errorf("contentTypeOf = %q, want image/png", ct)
	}

	// charset 参数被剥掉
	fh = newFileHeader(t, "a.pdf", "application/pdf; charset=binary", []byte("data"))
	if ct := contentTypeOf(fh); ct != "application/pdf" {
		t.Errorf("contentTypeOf = %q, want application/pdf", ct)
	}
}

func TestLocalStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "http://localhost:8080/")
	ctx := context.Background()

	url, err := store.Save(ctx, "images/a_01.png", strings.NewReader("hello"), 5, "image/png")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if url != "http://localhost:8080/uploads/images/a_01.png" {
		t.Errorf("unexpected url: %s", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "images", "a_01.png"))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("content mismatch: %q", data)
	}

	objects, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(objects) != 1 || objects[0].Key != "images/a_01.png" || objects[0].Size != 5 {
		t.Errorf("unexpected listing: %+v", objects)
	}

	if err := store.Remove(ctx, "images/a_01.png"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	// 幂等：再删一次仍然成功
	if err := store.Remove(ctx, "images/a_01.png"); err != nil {
		t.Fatalf("remove missing: %v", err)
	}

	objects, err = store.List(ctx)
	if err != nil {
		t.Fatalf("list after remove: %v", err)
	}
	if len(objects) != 0 {
		t.Errorf("expected empty listing, got %+v", objects)
	}
}

func TestAdapterProcess(t *testing.T) {
	dir := t.TempDir()
	adapter, err := NewAdapter(testConfig(dir), time.Second, nil)
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}

	fh := newFileHeader(t, "Sports Day.png", "image/png", []byte("imagedata"))
	desc, err := adapter.Process(context.Background(), fh, CategoryImage)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if !strings.HasPrefix(desc.StorageKey, "images/sports-day_") {
		t.Errorf("unexpected storage key: %s", desc.StorageKey)
	}
	if desc.URL != "http://localhost:8080/uploads/"+desc.StorageKey {
		t.Errorf("url/key mismatch: %s vs %s", desc.URL, desc.StorageKey)
	}
	if desc.Strategy != configs.UploadStrategyLocal || desc.Category != CategoryImage {
		t.Errorf("unexpected descriptor: %+v", desc)
	}
	if desc.Size != int64(len("imagedata")) || desc.ContentType != "image/png" {
		t.Errorf("unexpected descriptor: %+v", desc)
	}

	if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(desc.StorageKey))); err != nil {
		t.Errorf("saved file missing: %v", err)
	}

	// 校验失败不落盘
	bad := newFileHeader(t, "evil.exe", "application/x-msdownload", []byte("mz"))
	if _, err := adapter.Process(context.Background(), bad, CategoryImage); err == nil {
		t.Error("expected validation error")
	}
}

func TestNewAdapterUnknownStrategy(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Strategy = "ftp"
	if _, err := NewAdapter(cfg, 0, nil); err == nil {
		t.Error("expected error for unknown strategy")
	}

	cfg.Strategy = configs.UploadStrategyS3
	if _, err := NewAdapter(cfg, 0, nil); err == nil {
		t.Error("expected error for s3 strategy without client")
	}
}

// slowStore 阻塞到 ctx 结束才返回，用于验证存储调用的超时控制.
type slowStore struct{}

func (slowStore) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func (slowStore) Remove(ctx context.Context, key string) error {
	<-ctx.Done()
	return ctx.Err()
}

func (slowStore) List(ctx context.Context) ([]StoredObject, error) { return nil, nil }

func (slowStore) Strategy() configs.UploadStrategy { return configs.UploadStrategyLocal }

func TestAdapterStoreTimeout(t *testing.T) {
	a := newAdapter(slowStore{}, testConfig(""), 10*time.Millisecond)
	fh := newFileHeader(t, "a.png", "image/png", []byte("data"))

	start := time.Now()
	_, err := a.Process(context.Background(), fh, CategoryImage)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("save did not honor the store timeout")
	}

	if err := a.Remove(context.Background(), "images/a_01.png"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded on remove, got %v", err)
	}
}
