package service

import (
	"errors"
	"testing"
	"time"

	"github.com/yeisme/schoolvault/pkg/internal/auth"
)

func newTestAdminService(t *testing.T) (*AdminService, auth.Authenticator) {
	t.Helper()

	d, _ := newTestDeps(t)
	authenticator, err := auth.NewJWTAuthenticator("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new authenticator: %v", err)
	}

	return newAdminService(d.dbClient, authenticator), authenticator
}

func TestAdminRegisterAndLogin(t *testing.T) {
	svc, authenticator := newTestAdminService(t)
	ctx := t.Context()

	token, err := svc.Register(ctx, "admin@school.edu", "s3cret-password")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if subject, err := authenticator.Validate(token); err != nil || subject != "admin@school.edu" {
		t.Errorf("register token invalid: subject=%q err=%v", subject, err)
	}

	token, err = svc.Login(ctx, "admin@school.edu", "s3cret-password")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if subject, err := authenticator.Validate(token); err != nil || subject != "admin@school.edu" {
		t.Errorf("login token invalid: subject=%q err=%v", subject, err)
	}
}

func TestAdminRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAdminService(t)
	ctx := t.Context()

	if _, err := svc.Register(ctx, "admin@school.edu", "s3cret-password"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Register(ctx, "admin@school.edu", "another-password")
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestAdminLoginBadCredentials(t *testing.T) {
	svc, _ := newTestAdminService(t)
	ctx := t.Context()

	if _, err := svc.Register(ctx, "admin@school.edu", "s3cret-password"); err != nil {
		t.Fatalf("register: %v", err)
	}

	// 密码错误与账号不存在返回同一个错误
	if _, err := svc.Login(ctx, "admin@school.edu", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody@school.edu", "s3cret-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}
