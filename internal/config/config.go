// internal/config/config.go
package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config 服务启动配置，启动时构建一次，之后只读
type Config struct {
	Host            string
	Port            string
	DebugMode       bool
	CORSOrigins     []string
	LogFile         string
	MetricsEnabled  bool
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Default 返回不依赖环境变量的默认配置
func Default() Config {
	return Config{
		Host:            "0.0.0.0",
		Port:            "5000",
		DebugMode:       true,
		CORSOrigins:     []string{"*"},
		MetricsEnabled:  true,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		ShutdownTimeout: 30 * time.Second,
	}
}

// Load 从环境变量加载配置（.env 文件可选）
func Load() (Config, error) {
	// .env 不存在时忽略
	_ = godotenv.Load()

	def := Default()
	cfg := Config{
		Host:           getEnv("HOST", def.Host),
		Port:           getEnv("PORT", def.Port),
		DebugMode:      getEnvBool("DEBUG_MODE", def.DebugMode),
		CORSOrigins:    getEnvList("CORS_ORIGINS", def.CORSOrigins),
		LogFile:        getEnv("LOG_FILE", ""),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", def.MetricsEnabled),
	}

	var err error
	if cfg.ReadTimeout, err = getEnvDuration("READ_TIMEOUT", def.ReadTimeout); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = getEnvDuration("WRITE_TIMEOUT", def.WriteTimeout); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = getEnvDuration("SHUTDOWN_TIMEOUT", def.ShutdownTimeout); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Addr 监听地址 host:port
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// AllowsAnyOrigin 是否允许任意来源跨域
func (c Config) AllowsAnyOrigin() bool {
	for _, o := range c.CORSOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

// getEnv 获取环境变量，如果不存在则返回默认值
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool 获取布尔类型环境变量
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	value = strings.ToLower(value)
	return value == "true" || value == "1" || value == "yes"
}

// getEnvList 逗号分隔的列表，空项丢弃
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return append([]string(nil), defaultValue...)
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return append([]string(nil), defaultValue...)
	}
	return items
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("解析 %s 失败: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s 必须为正数: %s", key, value)
	}
	return d, nil
}
