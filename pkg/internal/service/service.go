// Package service 实现门户的业务逻辑层（内容资源、相册照片、管理员账号），
// 不处理 HTTP 细节.
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yeisme/schoolvault/pkg/cache"
	"github.com/yeisme/schoolvault/pkg/configs"
	ctxPkg "github.com/yeisme/schoolvault/pkg/context"
	"github.com/yeisme/schoolvault/pkg/internal/storage/db"
	"github.com/yeisme/schoolvault/pkg/internal/storage/mq"
	"github.com/yeisme/schoolvault/pkg/internal/upload"
	nlog "github.com/yeisme/schoolvault/pkg/log"
)

// 业务错误，处理器据此映射 HTTP 状态码.
var (
	// ErrNotFound 记录不存在 (404).
	ErrNotFound = errors.New("record not found")
	// ErrConflict 唯一约束冲突 (409).
	ErrConflict = errors.New("record already exists")
	// ErrConcurrentUpdate 乐观并发重试耗尽 (409).
	ErrConcurrentUpdate = errors.New("concurrent update, please retry")
	// ErrInvalidCredentials 登录凭证错误 (400).
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrBadInput 业务层参数校验失败 (400).
	ErrBadInput = errors.New("invalid input")
)

// translateDBError 把 GORM 错误映射为业务错误.
// TranslateError 开启后各方言的唯一约束冲突统一为 gorm.ErrDuplicatedKey.
func translateDBError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}

// deps 服务共享依赖，缓存与消息队列可为 nil（功能未启用时跳过）.
type deps struct {
	dbClient *db.Client
	kvCache  *cache.Cache
	mqClient *mq.Client
	uploader *upload.Adapter
}

// newDeps 从 context 获取依赖实例.
func newDeps(c context.Context) *deps {
	dbc := ctxPkg.GetDBClient(c)

	// 为了安全起见，应该直接 panic 而不是返回 nil，依赖此服务就不需要再检查
	if dbc == nil || dbc.DB == nil {
		nlog.Logger().Fatal().Msg("storage clients not initialized")
	}

	d := &deps{dbClient: dbc, mqClient: ctxPkg.GetMQClient(c)}
	if kvc := ctxPkg.GetKVClient(c); kvc != nil {
		d.kvCache = cache.NewCache(kvc)
	}

	cfg := configs.GetConfig()
	adapter, err := upload.NewAdapter(cfg.Upload, cfg.Server.GetTimeoutDuration(), ctxPkg.GetS3Client(c))
	if err != nil {
		nlog.Logger().Fatal().Err(err).Msg("upload adapter init failed")
	}
	d.uploader = adapter

	return d
}
