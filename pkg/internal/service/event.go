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

// eventDateLayouts 活动时间支持的输入格式.
var eventDateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// EventService 校园活动业务.
type EventService struct {
	res *resource[model.Event]
}

// NewEventService 从 context 获取依赖实例.
func NewEventService(c context.Context) *EventService {
	return newEventService(newDeps(c))
}

func newEventService(d *deps) *EventService {
	return &EventService{res: &resource[model.Event]{
		deps: d,
		name: "events",
		// 列表只展示未过期活动，按举办时间正序
		listScope: func(q *gorm.DB) *gorm.DB {
			return q.Where("event_date >= ?", time.Now()).Order("event_date ASC")
		},
		keysOf: func(e *model.Event) []string { return []string{e.StorageKey} },
		refOf: func(e *model.Event) queue.ContentRef {
			return queue.ContentRef{Type: "event", ID: e.ID, Title: e.Title}
		},
	}}
}

// parseEventDate 解析活动时间，支持 RFC3339 与纯日期两种输入.
func parseEventDate(s string) (time.Time, error) {
	for _, layout := range eventDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: unrecognized event date %q", ErrBadInput, s)
}

// Create 创建活动，配图可选，地点缺省为校内.
func (s *EventService) Create(ctx context.Context, req *types.CreateEventRequest, image *multipart.FileHeader) (*model.Event, error) {
	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		return nil, err
	}

	rec := &model.Event{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		EventDate:     eventDate,
		ImageURL:      model.DefaultEventImageURL,
		SortTimestamp: time.Now().UnixMilli(),
	}
	if rec.Location == "" {
		rec.Location = model.DefaultEventLocation
	}

	var desc *upload.Descriptor
	if image != nil {
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

// List 返回未过期活动，按举办时间正序.
func (s *EventService) List(ctx context.Context) ([]model.Event, error) {
	return s.res.List(ctx)
}

// Get 按 ID 查询活动，过期活动也能单查.
func (s *EventService) Get(ctx context.Context, id uint) (*model.Event, error) {
	return s.res.Get(ctx, id)
}

// Delete 删除活动并回收其配图.
func (s *EventService) Delete(ctx context.Context, id uint) error {
	return s.res.Delete(ctx, id)
}
