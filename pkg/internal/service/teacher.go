package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yeisme/schoolvault/pkg/internal/model"
	"github.com/yeisme/schoolvault/pkg/internal/types"
	"github.com/yeisme/schoolvault/pkg/queue"
)

// TeacherService 教师信息业务，邮箱唯一.
type TeacherService struct {
	res *resource[model.Teacher]
}

// NewTeacherService 从 context 获取依赖实例.
func NewTeacherService(c context.Context) *TeacherService {
	return newTeacherService(newDeps(c))
}

func newTeacherService(d *deps) *TeacherService {
	return &TeacherService{res: &resource[model.Teacher]{
		deps: d,
		name: "teachers",
		listScope: func(q *gorm.DB) *gorm.DB {
			return q.Order("sort_timestamp DESC")
		},
		refOf: func(t *model.Teacher) queue.ContentRef {
			return queue.ContentRef{Type: "teacher", ID: t.ID, Title: t.Name}
		},
	}}
}

// Create 创建教师记录，邮箱重复返回 ErrConflict.
func (s *TeacherService) Create(ctx context.Context, req *types.CreateTeacherRequest) (*model.Teacher, error) {
	rec := &model.Teacher{
		Name:          req.Name,
		Subject:       req.Subject,
		Email:         req.Email,
		Qualification: req.Qualification,
		SortTimestamp: time.Now().UnixMilli(),
	}

	if err := s.res.Create(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// List 返回全部教师记录.
func (s *TeacherService) List(ctx context.Context) ([]model.Teacher, error) {
	return s.res.List(ctx)
}

// Get 按 ID 查询教师记录.
func (s *TeacherService) Get(ctx context.Context, id uint) (*model.Teacher, error) {
	return s.res.Get(ctx, id)
}

// Delete 删除教师记录.
func (s *TeacherService) Delete(ctx context.Context, id uint) error {
	return s.res.Delete(ctx, id)
}
