// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Corphon/SegmentationAPI/internal/api"
	"github.com/Corphon/SegmentationAPI/internal/config"
	"github.com/Corphon/SegmentationAPI/internal/di"
	"github.com/Corphon/SegmentationAPI/internal/services"
	"github.com/Corphon/SegmentationAPI/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// App 应用实例：配置、容器、路由与 HTTP 服务器
type App struct {
	config    config.Config
	logger    *zap.Logger
	container *di.Container
	router    *gin.Engine
	server    *http.Server
}

// New 按依赖顺序初始化服务并设置路由
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	container := InitServices(logger)

	router, err := api.SetupRouter(cfg, container, logger)
	if err != nil {
		return nil, fmt.Errorf("设置路由失败: %w", err)
	}

	return &App{
		config:    cfg,
		logger:    logger,
		container: container,
		router:    router,
		server: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       2 * cfg.ReadTimeout,
			ErrorLog:          zap.NewStdLog(logger),
		},
	}, nil
}

// InitServices 创建并注册所有服务
func InitServices(logger *zap.Logger) *di.Container {
	container := di.NewContainer()

	metrics := utils.NewAPIMetrics(logger)
	container.Register(di.ServiceMetrics, metrics)
	container.Register(di.ServiceSegmentation, services.NewSegmentationService(metrics, logger))

	return container
}

// Handler 返回完整的 HTTP 处理链
func (a *App) Handler() http.Handler {
	return a.router
}

// Container 返回服务容器
func (a *App) Container() *di.Container {
	return a.container
}

// Run 在配置的地址上监听，直到 ctx 结束后优雅关闭
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("监听 %s 失败: %w", a.server.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve 使用给定的 listener 提供服务，ctx 结束时在 ShutdownTimeout 内排空请求
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	a.logger.Info("server listening", zap.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("服务器异常退出: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down server", zap.Duration("timeout", a.config.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout())
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("服务器强制关闭: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	a.logger.Info("server stopped")
	return nil
}

func (a *App) shutdownTimeout() time.Duration {
	if a.config.ShutdownTimeout <= 0 {
		return 30 * time.Second
	}
	return a.config.ShutdownTimeout
}
