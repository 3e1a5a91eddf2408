// Package upload 实现上传适配层：校验、生成存储键并按策略落到本地磁盘或对象存储,
// 返回与存储后端无关的描述符供业务层持久化.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/yeisme/schoolvault/pkg/configs"
	"github.com/yeisme/schoolvault/pkg/internal/storage/s3"
	"github.com/yeisme/schoolvault/pkg/metrics"
)

// Category 上传分类，决定允许的内容类型与键前缀.
type Category string

const (
	CategoryImage    Category = "image"
	CategoryDocument Category = "document"
)

var (
	// ErrFileTooLarge 文件超过配置上限.
	ErrFileTooLarge = errors.New("upload: file too large")
	// ErrUnsupportedType 内容类型不在分类允许列表内.
	ErrUnsupportedType = errors.New("upload: unsupported content type")
	// ErrEmptyFile 空文件.
	ErrEmptyFile = errors.New("upload: empty file")
)

// 分类允许的内容类型.
var allowedTypes = map[Category]map[string]bool{
	CategoryImage: {
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	},
	CategoryDocument: {
		"application/pdf":    true,
		"application/msword": true,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	},
}

// keyPrefix 返回分类在存储键中的目录前缀.
func (c Category) keyPrefix() string {
	if c == CategoryDocument {
		return "documents"
	}
	return "images"
}

// Descriptor 一次成功上传的结果，业务层把 StorageKey 与 URL 持久化到记录上.
type Descriptor struct {
	StorageKey  string                 `json:"storage_key"`
	URL         string                 `json:"url"`
	Category    Category               `json:"category"`
	Strategy    configs.UploadStrategy `json:"strategy"`
	FileName    string                 `json:"file_name"`
	Size        int64                  `json:"size"`
	ContentType string                 `json:"content_type"`
}

// StoredObject 存储后端中的一个对象，供孤儿清理任务对账.
type StoredObject struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// Store 存储策略接口，本地磁盘与对象存储各实现一份.
type Store interface {
	// Save 写入对象并返回外部可访问的 URL
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	// Remove 删除对象，对象不存在视为成功
	Remove(ctx context.Context, key string) error
	// List 枚举全部对象
	List(ctx context.Context) ([]StoredObject, error)
	// Strategy 返回策略标识
	Strategy() configs.UploadStrategy
}

// Adapter 上传适配器，持有当前策略的 Store 并负责校验与键生成.
// 每次存储后端调用都在 storeTimeout 内完成，避免慢后端拖住请求.
type Adapter struct {
	store        Store
	cfg          configs.UploadConfig
	storeTimeout time.Duration
	counter      func(category, strategy string)
	bytes        func(category, strategy string, n int64)
}

// NewAdapter 按配置的策略构建适配器，s3 策略要求已初始化的对象存储客户端.
// storeTimeout 来自 server.timeout，为 0 时不限时.
func NewAdapter(cfg configs.UploadConfig, storeTimeout time.Duration, s3Client *s3.Client) (*Adapter, error) {
	var store Store
	switch cfg.Strategy {
	case configs.UploadStrategyS3:
		if s3Client == nil {
			return nil, errors.New("upload: s3 strategy requires an object storage client")
		}
		store = NewS3Store(s3Client)
	case configs.UploadStrategyLocal:
		store = NewLocalStore(cfg.LocalDir, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("upload: unknown strategy %q", cfg.Strategy)
	}
	return newAdapter(store, cfg, storeTimeout), nil
}

func newAdapter(store Store, cfg configs.UploadConfig, storeTimeout time.Duration) *Adapter {
	return &Adapter{
		store:        store,
		cfg:          cfg,
		storeTimeout: storeTimeout,
		counter: func(category, strategy string) {
			metrics.UploadCounter.WithLabelValues(category, strategy).Inc()
		},
		bytes: func(category, strategy string, n int64) {
			metrics.UploadBytes.WithLabelValues(category, strategy).Add(float64(n))
		},
	}
}

// storeContext 给存储后端调用加上超时.
func (a *Adapter) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.storeTimeout)
}

// Store 返回当前策略的存储实现.
func (a *Adapter) Store() Store { return a.store }

// Validate 只做校验不落盘，批量上传先整体校验再逐个写入.
func (a *Adapter) Validate(fh *multipart.FileHeader, category Category) error {
	if fh == nil || fh.Size == 0 {
		return ErrEmptyFile
	}
	if fh.Size > a.cfg.MaxSizeBytes {
		return fmt.Errorf("%w: %d bytes exceeds limit %d", ErrFileTooLarge, fh.Size, a.cfg.MaxSizeBytes)
	}
	ct := contentTypeOf(fh)
	if !allowedTypes[category][ct] {
		return fmt.Errorf("%w: %q not allowed for %s", ErrUnsupportedType, ct, category)
	}
	return nil
}

// Process 校验并写入一个 multipart 文件，返回上传描述符.
func (a *Adapter) Process(ctx context.Context, fh *multipart.FileHeader, category Category) (*Descriptor, error) {
	if err := a.Validate(fh, category); err != nil {
		return nil, err
	}
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("upload: open multipart file: %w", err)
	}
	defer src.Close()

	ct := contentTypeOf(fh)
	key := BuildKey(category, fh.Filename)

	saveCtx, cancel := a.storeContext(ctx)
	defer cancel()

	url, err := a.store.Save(saveCtx, key, src, fh.Size, ct)
	if err != nil {
		return nil, err
	}

	strategy := string(a.store.Strategy())
	a.counter(string(category), strategy)
	a.bytes(string(category), strategy, fh.Size)

	return &Descriptor{
		StorageKey:  key,
		URL:         url,
		Category:    category,
		Strategy:    a.store.Strategy(),
		FileName:    fh.Filename,
		Size:        fh.Size,
		ContentType: ct,
	}, nil
}

// Remove 删除一个已上传对象，空键直接返回.
func (a *Adapter) Remove(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	rmCtx, cancel := a.storeContext(ctx)
	defer cancel()

	return a.store.Remove(rmCtx, key)
}

// contentTypeOf 取 multipart 声明的内容类型，缺失时按扩展名推断.
func contentTypeOf(fh *multipart.FileHeader) string {
	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = mime.TypeByExtension(filepath.Ext(fh.Filename))
	}
	// 剥离 charset 等参数
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(strings.ToLower(ct))
}
