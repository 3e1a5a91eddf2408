// Package auth 提供管理端令牌的签发与校验，当前实现为 HMAC 签名的 JWT.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "schoolvault"

var (
	// ErrInvalidToken 令牌非法或签名不匹配.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken 令牌已过期.
	ErrExpiredToken = errors.New("token expired")
)

// Authenticator 抽象令牌签发与校验，便于替换实现或在测试中打桩.
type Authenticator interface {
	// IssueToken 为指定管理员签发令牌.
	IssueToken(username string) (string, error)
	// Validate 校验令牌并返回管理员用户名.
	Validate(token string) (string, error)
}

// JWTAuthenticator 基于 HS256 的 Authenticator 实现.
type JWTAuthenticator struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTAuthenticator 创建 JWT 认证器.
func NewJWTAuthenticator(secret string, ttl time.Duration) (*JWTAuthenticator, error) {
	if secret == "" {
		return nil, fmt.Errorf("auth secret must not be empty")
	}

	return &JWTAuthenticator{secret: []byte(secret), ttl: ttl}, nil
}

// IssueToken 签发带过期时间的令牌.
func (a *JWTAuthenticator) IssueToken(username string) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Validate 校验令牌签名与有效期，返回 Subject.
func (a *JWTAuthenticator) Validate(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return a.secret, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}

		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
