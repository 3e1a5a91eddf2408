// Package storage 聚合数据库、对象存储、键值缓存与消息队列客户端.
//
// Example:
//
// 初始化
//
//	 ctx := context.Background()
//	 mgr, err := storage.Init(ctx)
//
//		if err != nil {
//		    // 处理错误
//		}
//
// 获取存储客户端
//
//	s3Client := mgr.GetS3Client()
//	dbClient := mgr.GetDBClient()
package storage

import (
	"context"
	"sync"

	"github.com/yeisme/schoolvault/pkg/configs"
	dbc "github.com/yeisme/schoolvault/pkg/internal/storage/db"
	kvc "github.com/yeisme/schoolvault/pkg/internal/storage/kv"
	mqc "github.com/yeisme/schoolvault/pkg/internal/storage/mq"
	s3c "github.com/yeisme/schoolvault/pkg/internal/storage/s3"
	nlog "github.com/yeisme/schoolvault/pkg/log"
)

// Manager 聚合所有存储资源.
// DB 与 KV 总是初始化；S3 仅在上传策略为 s3 时建立连接；MQ 仅在事件开关打开时建立连接.
type Manager struct {
	DB *dbc.Client
	S3 *s3c.Client
	KV *kvc.Client
	MQ *mqc.Client
}

var (
	mgr     *Manager
	mgrOnce sync.Once
)

// Init 初始化默认存储，使用全局配置.重复调用只返回已初始化实例.
func Init(ctx context.Context) (*Manager, error) {
	var err error

	mgrOnce.Do(func() {
		cfg := configs.GetConfig()

		m, e := NewManager(ctx, cfg)
		if e != nil {
			err = e

			return
		}

		mgr = m

		nlog.Logger().Info().Msg("storage manager initialized")
	})

	return mgr, err
}

// NewManager 按配置构建 Manager，不使用单例.测试中可用来构建独立实例.
func NewManager(ctx context.Context, cfg *configs.AppConfig) (*Manager, error) {
	m := &Manager{}

	// DB
	dbi, err := dbc.New(ctx, &cfg.DB)
	if err != nil {
		return nil, err
	}

	m.DB = dbi

	// KV
	kvi, err := kvc.NewKVClient(ctx, &cfg.KV)
	if err != nil {
		return nil, err
	}

	m.KV = kvi

	// S3 只有对象存储策略需要
	if cfg.Upload.Strategy == configs.UploadStrategyS3 {
		s3i, err := s3c.New(ctx, &cfg.S3)
		if err != nil {
			return nil, err
		}

		m.S3 = s3i
	}

	// MQ 事件开关打开时才连接
	if cfg.Events.Enabled {
		mqi, err := mqc.New(ctx, &cfg.MQ)
		if err != nil {
			return nil, err
		}

		m.MQ = mqi
	}

	return m, nil
}

// Close 释放所有已初始化的客户端.
func (m *Manager) Close() error {
	var err error

	if m.MQ != nil {
		if e := m.MQ.Close(); e != nil {
			err = e
		}
	}

	if m.KV != nil {
		if e := m.KV.Close(); e != nil {
			err = e
		}
	}

	if m.S3 != nil {
		if e := m.S3.Close(); e != nil {
			err = e
		}
	}

	if m.DB != nil {
		if e := m.DB.Close(); e != nil {
			err = e
		}
	}

	return err
}

// GetDBClient 获取 DB 客户端.
func (m *Manager) GetDBClient() *dbc.Client {
	return m.DB
}

// GetS3Client 获取 S3 客户端.
func (m *Manager) GetS3Client() *s3c.Client {
	return m.S3
}

// GetKVClient 获取 KV 客户端.
func (m *Manager) GetKVClient() *kvc.Client {
	return m.KV
}

// GetMQClient 获取 MQ 客户端.
func (m *Manager) GetMQClient() *mqc.Client {
	return m.MQ
}
