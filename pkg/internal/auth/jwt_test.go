package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/yeisme/schoolvault/pkg/internal/auth"
)

// TestIssueAndValidate 测试令牌签发与校验往返.
func TestIssueAndValidate(t *testing.T) {
	a, err := auth.NewJWTAuthenticator("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewJWTAuthenticator failed: %v", err)
	}

	token, err := a.IssueToken("principal")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	subject, err := a.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if subject != "principal" {
		t.Errorf("subject = %q, want %q", subject, "principal")
	}
}

// TestValidate_WrongSecret 测试错误密钥签名的令牌被拒绝.
func TestValidate_WrongSecret(t *testing.T) {
	a1, _ := auth.NewJWTAuthenticator("secret-one", time.Hour)
	a2, _ := auth.NewJWTAuthenticator("secret-two", time.Hour)

	token, err := a1.IssueToken("principal")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	if _, err := a2.Validate(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

// TestValidate_Expired 测试过期令牌被拒绝.
func TestValidate_Expired(t *testing.T) {
	a, _ := auth.NewJWTAuthenticator("test-secret", -time.Minute)

	token, err := a.IssueToken("principal")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	if _, err := a.Validate(token); !errors.Is(err, auth.ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

// TestValidate_Garbage 测试非法令牌被拒绝.
func TestValidate_Garbage(t *testing.T) {
	a, _ := auth.NewJWTAuthenticator("test-secret", time.Hour)

	if _, err := a.Validate("not-a-token"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

// TestNewJWTAuthenticator_EmptySecret 测试空密钥被拒绝.
func TestNewJWTAuthenticator_EmptySecret(t *testing.T) {
	if _, err := auth.NewJWTAuthenticator("", time.Hour); err == nil {
		t.Error("expected error for empty secret")
	}
}
