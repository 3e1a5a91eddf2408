package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"gorm.io/gorm"

	"github.com/yeisme/schoolvault/pkg/internal/model"
	"github.com/yeisme/schoolvault/pkg/internal/types"
	"github.com/yeisme/schoolvault/pkg/internal/upload"
	"github.com/yeisme/schoolvault/pkg/queue"
)

// ResultService 成绩公告业务，附件按文档分类校验.
type ResultService struct {
	res *resource[model.Result]
}

// NewResultService 从 context 获取依赖实例.
func NewResultService(c context.Context) *ResultService {
	return newResultService(newDeps(c))
}

func newResultService(d *deps) *ResultService {
	return &ResultService{res: &resource[model.Result]{
		deps: d,
		name: "results",
		listScope: func(q *gorm.DB) *gorm.DB {
			return q.Order("sort_timestamp DESC")
		},
		keysOf: func(r *model.Result) []string { return []string{r.StorageKey} },
		refOf: func(r *model.Result) queue.ContentRef {
			return queue.ContentRef{Type: "result", ID: r.ID, Title: r.Title}
		},
	}}
}

// Create 创建成绩公告，标题、年级与成绩文件都是必填项.
func (s *ResultService) Create(ctx context.Context, req *types.CreateResultRequest, file *multipart.FileHeader) (*model.Result, error) {
	if file == nil {
		return nil, fmt.Errorf("%w: result file is required", ErrBadInput)
	}

	now := time.Now()
	rec := &model.Result{
		Title:         req.Title,
		Grade:         req.Grade,
		Date:          req.Date,
		SortTimestamp: now.UnixMilli(),
	}
	if rec.Date == "" {
		rec.Date = now.Format(displayDateLayout)
	}

	desc, err := s.res.processUpload(ctx, file, upload.CategoryDocument)
	if err != nil {
		return nil, err
	}

	rec.FileURL = desc.URL
	rec.StorageKey = desc.StorageKey
	rec.StorageCategory = string(desc.Category)

	if err := s.res.Create(ctx, rec); err != nil {
		s.res.discardUpload(ctx, desc)

		return nil, err
	}

	return rec, nil
}

// List 按时间倒序返回全部成绩公告.
func (s *ResultService) List(ctx context.Context) ([]model.Result, error) {
	return s.res.List(ctx)
}

// Get 按 ID 查询成绩公告.
func (s *ResultService) Get(ctx context.Context, id uint) (*model.Result, error) {
	return s.res.Get(ctx, id)
}

// Delete 删除成绩公告并回收其文件.
func (s *ResultService) Delete(ctx context.Context, id uint) error {
	return s.res.Delete(ctx, id)
}
