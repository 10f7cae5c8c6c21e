// internal/api/router.go
package api

import (
	"fmt"

	"github.com/Corphon/SegmentationAPI/internal/config"
	"github.com/Corphon/SegmentationAPI/internal/di"
	"github.com/Corphon/SegmentationAPI/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter 配置HTTP路由
func SetupRouter(cfg config.Config, container *di.Container, logger *zap.Logger) (*gin.Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// 只从容器获取服务，不在这里创建
	segmenter, err := di.Resolve[Segmenter](container, di.ServiceSegmentation)
	if err != nil {
		return nil, fmt.Errorf("切分服务未正确初始化: %w", err)
	}

	metrics, err := di.Resolve[*utils.APIMetrics](container, di.ServiceMetrics)
	if err != nil {
		return nil, fmt.Errorf("指标服务未正确初始化: %w", err)
	}

	response := NewResponseHelper(logger, metrics)
	handler := NewHandler(segmenter, response)

	r := gin.New()
	r.HandleMethodNotAllowed = true

	// 顺序有意义：Recovery 在日志与指标之内，ErrorHandler 在最内层
	r.Use(
		RequestID(),
		AccessLogger(logger),
		RequestMetrics(metrics),
		corsMiddleware(cfg.CORSOrigins, cfg.AllowsAnyOrigin()),
		Recovery(response),
		ErrorHandler(response),
	)

	r.NoRoute(handler.NotFound)
	r.NoMethod(handler.MethodNotAllowed)

	r.GET("/", handler.Index)
	r.HEAD("/", handler.Index)
	r.GET("/health", handler.HealthCheck)
	r.HEAD("/health", handler.HealthCheck)
	r.POST("/segment", handler.SegmentText)

	if cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	return r, nil
}
