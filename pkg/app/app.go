// Package app 提供应用程序的初始化、组装与生命周期管理.
package app

import (
	contextPkg "context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yeisme/schoolvault/pkg/api"
	"github.com/yeisme/schoolvault/pkg/configs"
	"github.com/yeisme/schoolvault/pkg/internal/auth"
	"github.com/yeisme/schoolvault/pkg/internal/jobs"
	"github.com/yeisme/schoolvault/pkg/internal/model"
	"github.com/yeisme/schoolvault/pkg/internal/storage"
	"github.com/yeisme/schoolvault/pkg/log"
	"github.com/yeisme/schoolvault/pkg/metrics"
	"github.com/yeisme/schoolvault/pkg/middleware"
	"github.com/yeisme/schoolvault/pkg/scheduler"
	"github.com/yeisme/schoolvault/pkg/tracing"
)

// shutdownTimeout 优雅退出的等待上限.
const shutdownTimeout = 10 * time.Second

// App 持有组装完成的 gin 引擎与全部后台资源.
type App struct {
	Engine  *gin.Engine
	config  *configs.AppConfig
	manager *storage.Manager
	sched   *scheduler.Scheduler
}

// NewApp 初始化配置、追踪、指标、存储与调度器，并组装路由.
// 初始化失败直接退出进程.
func NewApp(configPath string) *App {
	ctx := contextPkg.Background()

	if err := configs.InitConfig(configPath); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	config := configs.GetConfig()
	if !config.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := tracing.InitTracer(config.Tracing); err != nil {
		fmt.Printf("Error initializing tracing: %v\n", err)
		os.Exit(1)
	}

	if err := metrics.InitMetrics(config.Metrics); err != nil {
		fmt.Printf("Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	manager, err := storage.Init(ctx)
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	if err := manager.GetDBClient().AutoMigrate(model.AllModels()...); err != nil {
		fmt.Printf("Error migrating database: %v\n", err)
		os.Exit(1)
	}

	sched, err := scheduler.NewScheduler()
	if err != nil {
		fmt.Printf("Error initializing scheduler: %v\n", err)
		os.Exit(1)
	}

	if err := jobs.RegisterCronJobs(sched, manager); err != nil {
		fmt.Printf("Error registering cron jobs: %v\n", err)
		os.Exit(1)
	}
	sched.Start()

	l := log.Logger()
	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.CORSMiddleware(config.Server),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.GinLoggerMiddleware(),
		middleware.TracingMiddleware(),
		middleware.PrometheusMiddleware(),
		middleware.RateLimitMiddleware(config.RateLimit),
		middleware.StorageMiddleware(manager),
		middleware.SchedulerMiddleware(sched),
	)

	api.RegisterGroup(engine, buildAuthMiddleware(config))

	if config.Metrics.Enabled {
		_ = metrics.StartMetricsServer(config.Metrics, engine)
	}

	return &App{
		Engine:  engine,
		config:  config,
		manager: manager,
		sched:   sched,
	}
}

// buildAuthMiddleware 构建写接口的认证中间件，认证关闭时直接放行.
func buildAuthMiddleware(config *configs.AppConfig) gin.HandlerFunc {
	if !config.Auth.Enabled {
		log.Logger().Warn().Msg("认证已关闭，写接口公开")

		return func(c *gin.Context) { c.Next() }
	}

	ttl := time.Duration(config.Auth.TokenTTLHours) * time.Hour

	authenticator, err := auth.NewJWTAuthenticator(config.Auth.Secret, ttl)
	if err != nil {
		log.Logger().Fatal().Err(err).Msg("jwt authenticator init failed")
	}

	return middleware.AuthMiddleware(config.Auth, authenticator)
}

// Run 启动 HTTP 服务并阻塞到收到退出信号，随后优雅关闭.
func (a *App) Run() error {
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port),
		Handler:           a.Engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		log.Logger().Info().Str("addr", srv.Addr).Msg("HTTP 服务启动")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Logger().Info().Str("signal", sig.String()).Msg("收到退出信号")
	}

	return a.Shutdown(srv)
}

// Shutdown 按序释放资源：HTTP -> 调度器 -> 存储 -> 追踪.
func (a *App) Shutdown(srv *http.Server) error {
	ctx, cancel := contextPkg.WithTimeout(contextPkg.Background(), shutdownTimeout)
	defer cancel()

	var errs []error

	if srv != nil {
		if err := srv.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
	}

	if a.sched != nil {
		if err := a.sched.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("scheduler stop: %w", err))
		}
	}

	if a.manager != nil {
		if err := a.manager.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage close: %w", err))
		}
	}

	if err := tracing.ShutdownTracer(ctx); err != nil {
		errs = append(errs, fmt.Errorf("tracing shutdown: %w", err))
	}

	if len(errs) == 0 {
		log.Logger().Info().Msg("服务已退出")
	}

	return errors.Join(errs...)
}
