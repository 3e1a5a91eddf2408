package service

import (
	"context"
	"mime/multipart"
	"time"

	"gorm.io/gorm"

	"github.com/yeisme/schoolvault/pkg/internal/model"
	"github.com/yeisme/schoolvault/pkg/internal/types"
	"github.com/yeisme/schoolvault/pkg/internal/upload"
	"github.com/yeisme/schoolvault/pkg/queue"
)

// displayDateLayout 列表页展示日期的格式.
const displayDateLayout = "January 2, 2006"

// NewsService 新闻业务.
type NewsService struct {
	res *resource[model.News]
}

// NewNewsService 从 context 获取依赖实例.
func NewNewsService(c context.Context) *NewsService {
	return newNewsService(newDeps(c))
}

func newNewsService(d *deps) *NewsService {
	return &NewsService{res: &resource[model.News]{
		deps: d,
		name: "news",
		listScope: func(q *gorm.DB) *gorm.DB {
			return q.Order("sort_timestamp DESC")
		},
		keysOf: func(n *model.News) []string { return []string{n.StorageKey} },
		refOf: func(n *model.News) queue.ContentRef {
			return queue.ContentRef{Type: "news", ID: n.ID, Title: n.Title}
		},
	}}
}

// Create 创建新闻，配图可选，缺失时使用占位图.
// 先校验并上传文件再写库，写库失败回收刚上传的文件.
func (s *NewsService) Create(ctx context.Context, req *types.CreateNewsRequest, image *multipart.FileHeader) (*model.News, error) {
	now := time.Now()
	rec := &model.News{
		Title:         req.Title,
		Content:       req.Content,
		ImageURL:      model.DefaultNewsImageURL,
		Date:          req.Date,
		SortTimestamp: now.UnixMilli(),
	}
	if rec.Date == "" {
		rec.Date = now.Format(displayDateLayout)
	}

	var desc *upload.Descriptor
	if image != nil {
		var err error
		desc, err = s.res.processUpload(ctx, image, upload.CategoryImage)
		if err != nil {
			return nil, err
		}

		rec.ImageURL = desc.URL
		rec.StorageKey = desc.StorageKey
		rec.StorageCategory = string(desc.Category)
	}

	if err := s.res.Create(ctx, rec); err != nil {
		if desc != nil {
			s.res.discardUpload(ctx, desc)
		}

		return nil, err
	}

	return rec, nil
}

// List 按时间倒序返回全部新闻.
func (s *NewsService) List(ctx context.Context) ([]model.News, error) {
	return s.res.List(ctx)
}

// Get 按 ID 查询新闻.
func (s *NewsService) Get(ctx context.Context, id uint) (*model.News, error) {
	return s.res.Get(ctx, id)
}

// Delete 删除新闻并回收其配图.
func (s *NewsService) Delete(ctx context.Context, id uint) error {
	return s.res.Delete(ctx, id)
}
