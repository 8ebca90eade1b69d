package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/beaconship/backend/internal/infrastructure/log/handler"
)

// 全局 logger 实例
var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
	debugMode     bool
	output        io.Writer = os.Stdout
)

// Init 初始化日志系统
func Init(cfg *Config) {
	if cfg == nil {
		cfg = NewConfigFromEnv()
	}

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}

	mu.Lock()
	defer mu.Unlock()

	// 根据格式选择处理器
	var logHandler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		logHandler = slog.NewJSONHandler(output, opts)
	case "text":
		logHandler = slog.NewTextHandler(output, opts)
	default:
		logHandler = handler.NewConsoleHandler(output, opts)
	}

	service := cfg.Service
	if service == "" {
		service = "beaconship-beacon"
	}
	defaultLogger = slog.New(logHandler.WithAttrs([]slog.Attr{
		slog.String("service", service),
	}))

	debugMode = strings.ToLower(cfg.Level) == "debug"

	slog.SetDefault(defaultLogger)
}

// SetOutput 设置日志输出目标，需在 Init 之前调用
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// GetLogger 获取默认 logger
func GetLogger() *slog.Logger {
	mu.RLock()
	logger := defaultLogger
	mu.RUnlock()
	if logger == nil {
		// 未初始化，使用默认配置
		Init(nil)
		mu.RLock()
		logger = defaultLogger
		mu.RUnlock()
	}
	return logger
}

// NewModuleLogger 为特定模块创建 logger
func NewModuleLogger(module, component string) *slog.Logger {
	return GetLogger().With(
		slog.String("module", module),
		slog.String("component", component),
	)
}

// IsDebugMode 检查是否为调试模式
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return debugMode
}

// parseLevel 解析日志级别
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
