package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeisme/schoolvault/pkg/configs"
	ctxPkg "github.com/yeisme/schoolvault/pkg/context"
	"github.com/yeisme/schoolvault/pkg/internal/auth"
	"github.com/yeisme/schoolvault/pkg/internal/model"
	"github.com/yeisme/schoolvault/pkg/internal/storage/db"
	nlog "github.com/yeisme/schoolvault/pkg/log"
)

// AdminService 管理员账号业务：注册与登录，凭证换 JWT.
type AdminService struct {
	dbClient      *db.Client
	authenticator auth.Authenticator
}

// NewAdminService 从 context 获取依赖实例.
func NewAdminService(c context.Context) *AdminService {
	dbc := ctxPkg.GetDBClient(c)
	if dbc == nil || dbc.DB == nil {
		nlog.Logger().Fatal().Msg("storage clients not initialized")
	}

	cfg := configs.GetConfig()
	authenticator, err := auth.NewJWTAuthenticator(cfg.Auth.Secret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	if err != nil {
		nlog.Logger().Fatal().Err(err).Msg("jwt authenticator init failed")
	}

	return newAdminService(dbc, authenticator)
}

func newAdminService(dbc *db.Client, authenticator auth.Authenticator) *AdminService {
	return &AdminService{dbClient: dbc, authenticator: authenticator}
}

// Register 注册管理员并直接签发 token；邮箱重复返回 ErrConflict.
func (s *AdminService) Register(ctx context.Context, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	admin := &model.Admin{Email: email, PasswordHash: string(hash)}
	if err := s.dbClient.WithContext(ctx).Create(admin).Error; err != nil {
		return "", translateDBError(err)
	}

	return s.authenticator.IssueToken(admin.Email)
}

// Login 校验凭证并签发 token.
// 账号不存在与密码错误返回同一个错误，不泄露邮箱是否注册过.
func (s *AdminService) Login(ctx context.Context, email, password string) (string, error) {
	var admin model.Admin
	err := s.dbClient.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.authenticator.IssueToken(admin.Email)
}
