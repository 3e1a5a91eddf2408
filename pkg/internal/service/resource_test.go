package service

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yeisme/schoolvault/pkg/internal/model"
	"github.com/yeisme/schoolvault/pkg/internal/types"
	"github.com/yeisme/schoolvault/pkg/internal/upload"
)

func TestNewsCreateListDelete(t *testing.T) {
	d, _ := newTestDeps(t)
	svc := newNewsService(d)
	ctx := t.Context()

	first, err := svc.Create(ctx, &types.CreateNewsRequest{Title: "Sports Day", Content: "Annual sports day."}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ImageURL != model.DefaultNewsImageURL {
		t.Errorf("expected placeholder image, got %s", first.ImageURL)
	}
	if first.Date == "" {
		t.Error("expected default display date")
	}

	time.Sleep(2 * time.Millisecond)
	second, err := svc.Create(ctx, &types.CreateNewsRequest{Title: "Exam Schedule", Content: "Term exams.", Date: "May 1, 2026"}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 news, got %d", len(list))
	}
	// 新的在前
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Errorf("list not sorted newest first: %v", []uint{list[0].ID, list[1].ID})
	}

	got, err := svc.Get(ctx, first.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Sports Day" {
		t.Errorf("unexpected title %q", got.Title)
	}

	if err := svc.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	// 再删一次返回不存在
	if err := svc.Delete(ctx, first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on repeated delete, got %v", err)
	}
}

func TestNewsCreateWithImageAndCleanup(t *testing.T) {
	d, _ := newTestDeps(t)
	svc := newNewsService(d)
	ctx := t.Context()

	image := newFileHeader(t, "Open Day.png", "image/png", []byte("imagedata"))
	rec, err := svc.Create(ctx, &types.CreateNewsRequest{Title: "Open Day", Content: "Visit us."}, image)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.StorageKey == "" || !strings.HasPrefix(rec.StorageKey, "images/open-day_") {
		t.Errorf("unexpected storage key %q", rec.StorageKey)
	}
	if !strings.HasSuffix(rec.ImageURL, rec.StorageKey) {
		t.Errorf("image url %q does not reference storage key %q", rec.ImageURL, rec.StorageKey)
	}
	if keys := storedKeys(t, d); len(keys) != 1 || keys[0] != rec.StorageKey {
		t.Errorf("unexpected stored objects: %v", keys)
	}

	// 删除记录联动回收文件
	if err := svc.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if keys := storedKeys(t, d); len(keys) != 0 {
		t.Errorf("expected empty store after delete, got %v", keys)
	}
}

func TestNewsCreateRejectsInvalidUpload(t *testing.T) {
	d, _ := newTestDeps(t)
	svc := newNewsService(d)

	pdf := newFileHeader(t, "doc.pdf", "application/pdf", []byte("pdf"))
	_, err := svc.Create(t.Context(), &types.CreateNewsRequest{Title: "T", Content: "C"}, pdf)
	if !errors.Is(err, upload.ErrUnsupportedType) {
		t.Fatalf("expected unsupported type error, got %v", err)
	}

	// 校验失败不落盘也不写库
	if keys := storedKeys(t, d); len(keys) != 0 {
		t.Errorf("store should be empty, got %v", keys)
	}
	list, err := svc.List(t.Context())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected no news, got %d", len(list))
	}
}

func TestEventListSkipsPastEvents(t *testing.T) {
	d, _ := newTestDeps(t)
	svc := newEventService(d)
	ctx := t.Context()

	later := time.Now().Add(48 * time.Hour).Format(time.RFC3339)
	sooner := time.Now().Add(24 * time.Hour).Format(time.RFC3339)

	ev1, err := svc.Create(ctx, &types.CreateEventRequest{Title: "Science Fair", EventDate: later}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ev1.Location != model.DefaultEventLocation {
		t.Errorf("expected default location, got %q", ev1.Location)
	}

	ev2, err := svc.Create(ctx, &types.CreateEventRequest{Title: "PTA Meeting", EventDate: sooner, Location: "Main Hall"}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// 过期活动直接写库构造
	past := model.Event{Title: "Old Event", EventDate: time.Now().Add(-time.Hour)}
	if err := d.dbClient.WithContext(ctx).Create(&past).Error; err != nil {
		t.Fatalf("insert past event: %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 upcoming events, got %d", len(list))
	}
	// 按举办时间正序
	if list[0].ID != ev2.ID || list[1].ID != ev1.ID {
		t.Errorf("unexpected order: %v", []uint{list[0].ID, list[1].ID})
	}

	// 过期活动仍可单查
	if _, err := svc.Get(ctx, past.ID); err != nil {
		t.Errorf("get past event: %v", err)
	}
}

func TestEventCreateInvalidDate(t *testing.T) {
	d, _ := newTestDeps(t)
	svc := newEventService(d)

	_, err := svc.Create(t.Context(), &types.CreateEventRequest{Title: "X", EventDate: "not-a-date"}, nil)
	if !errors.Is(err, ErrBadInput) {
		t.Errorf("expected ErrBadInput, got %v", err)
	}
}

func TestStudentListSortedByGrade(t *testing.T) {
	d, _ := newTestDeps(t)
	svc := newStudentService(d)
	ctx := t.Context()

	for i, grade := range []int{9, 1, 5} {
		req := &types.CreateStudentRequest{Name: "S", Grade: grade, AdmissionID: fmt.Sprintf("ADM-%d", i)}
		if _, err := svc.Create(ctx, req); err != nil {
			t.Fatalf("create grade %d: %v", grade, err)
		}
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	grades := make([]int, 0, len(list))
	for _, s := range list {
		grades = append(grades, s.Grade)
	}
	// 按年级正序
	if len(grades) != 3 || grades[0] != 1 || grades[1] != 5 || grades[2] != 9 {
		t.Errorf("students not sorted by grade ascending: %v", grades)
	}
}

func TestStudentUniqueAdmissionID(t *testing.T) {
	d, _ := newTestDeps(t)
	svc := newStudentService(d)
	ctx := t.Context()

	rec, err := svc.Create(ctx, &types.CreateStudentRequest{Name: "Asha", Grade: 5, AdmissionID: "ADM-001"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Status != model.StudentStatusActive {
		t.Errorf("expected default status Active, got %q", rec.Status)
	}

	_, err = svc.Create(ctx, &types.CreateStudentRequest{Name: "Deng", Grade: 6, AdmissionID: "ADM-001"})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestTeacherUniqueEmail(t *testing.T) {
	d, _ := newTestDeps(t)
	svc := newTeacherService(d)
	ctx := t.Context()

	if _, err := svc.Create(ctx, &types.CreateTeacherRequest{Name: "Li", Email: "li@example.edu", Subject: "Math"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := svc.Create(ctx, &types.CreateTeacherRequest{Name: "Lee", Email: "li@example.edu", Subject: "Art"})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestResultCreateWithDocument(t *testing.T) {
	d, _ := newTestDeps(t)
	svc := newResultService(d)
	ctx := t.Context()

	file := newFileHeader(t, "Term 1 Results.pdf", "application/pdf", []byte("%PDF-1.4"))
	rec, err := svc.Create(ctx, &types.CreateResultRequest{Title: "Term 1", Grade: "Grade 5"}, file)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(rec.StorageKey, "documents/term-1-results_") {
		t.Errorf("unexpected storage key %q", rec.StorageKey)
	}
	if filepath.Ext(rec.StorageKey) != ".pdf" {
		t.Errorf("extension lost: %q", rec.StorageKey)
	}
	if rec.FileURL == "" {
		t.Error("expected file url")
	}

	// 图片不允许作为成绩文件
	img := newFileHeader(t, "a.png", "image/png", []byte("png"))
	if _, err := svc.Create(ctx, &types.CreateResultRequest{Title: "T2", Grade: "Grade 6"}, img); !errors.Is(err, upload.ErrUnsupportedType) {
		t.Errorf("expected unsupported type error, got %v", err)
	}
}

func TestResultCreateRequiresFile(t *testing.T) {
	d, _ := newTestDeps(t)
	svc := newResultService(d)
	ctx := t.Context()

	_, err := svc.Create(ctx, &types.CreateResultRequest{Title: "Term 1", Grade: "Grade 5"}, nil)
	if !errors.Is(err, ErrBadInput) {
		t.Fatalf("expected ErrBadInput, got %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("result without file must not persist, got %d rows", len(list))
	}
}

func TestResourceGetNotFound(t *testing.T) {
	d, _ := newTestDeps(t)
	svc := newNewsService(d)

	if _, err := svc.Get(t.Context(), 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
