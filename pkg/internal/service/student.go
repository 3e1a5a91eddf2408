package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yeisme/schoolvault/pkg/internal/model"
	"github.com/yeisme/schoolvault/pkg/internal/types"
	"github.com/yeisme/schoolvault/pkg/queue"
)

// StudentService 学籍业务，入学编号唯一.
type StudentService struct {
	res *resource[model.Student]
}

// NewStudentService 从 context 获取依赖实例.
func NewStudentService(c context.Context) *StudentService {
	return newStudentService(newDeps(c))
}

func newStudentService(d *deps) *StudentService {
	return &StudentService{res: &resource[model.Student]{
		deps: d,
		name: "students",
		// 学籍列表按年级正序
		listScope: func(q *gorm.DB) *gorm.DB {
			return q.Order("grade ASC")
		},
		refOf: func(s *model.Student) queue.ContentRef {
			return queue.ContentRef{Type: "student", ID: s.ID, Title: s.Name}
		},
	}}
}

// Create 创建学籍记录，入学编号重复返回 ErrConflict.
func (s *StudentService) Create(ctx context.Context, req *types.CreateStudentRequest) (*model.Student, error) {
	rec := &model.Student{
		Name:          req.Name,
		Grade:         req.Grade,
		AdmissionID:   req.AdmissionID,
		ParentEmail:   req.ParentEmail,
		Status:        req.Status,
		SortTimestamp: time.Now().UnixMilli(),
	}
	if rec.Status == "" {
		rec.Status = model.StudentStatusActive
	}

	if err := s.res.Create(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// List 按年级正序返回全部学籍记录.
func (s *StudentService) List(ctx context.Context) ([]model.Student, error) {
	return s.res.List(ctx)
}

// Get 按 ID 查询学籍记录.
func (s *StudentService) Get(ctx context.Context, id uint) (*model.Student, error) {
	return s.res.Get(ctx, id)
}

// Delete 删除学籍记录.
func (s *StudentService) Delete(ctx context.Context, id uint) error {
	return s.res.Delete(ctx, id)
}
