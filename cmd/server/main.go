// cmd/server/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Corphon/SegmentationAPI/internal/app"
	"github.com/Corphon/SegmentationAPI/internal/config"
	"github.com/Corphon/SegmentationAPI/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	logger, err := utils.NewLogger(utils.LoggerOptions{
		Debug: cfg.DebugMode,
		File:  cfg.LogFile,
	})
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer logger.Sync()

	if cfg.DebugMode {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("🚀 启动 Segmentation API 服务器...",
		zap.String("addr", cfg.Addr()),
		zap.Bool("debug", cfg.DebugMode),
		zap.Strings("cors_origins", cfg.CORSOrigins),
		zap.Bool("metrics", cfg.MetricsEnabled))

	// 3. 初始化服务与路由
	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Fatal("❌ 初始化应用失败", zap.Error(err))
	}

	// 4. 启动服务器，收到中断信号后优雅关闭
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		logger.Error("❌ 服务器退出", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}

	logger.Info("✅ 服务器优雅关闭完成")
}
