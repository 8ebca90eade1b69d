package log

import (
	"os"
	"strconv"
	"strings"
)

// Config 日志配置
type Config struct {
	// Level 日志级别：debug, info, warn, error
	Level string `json:"level" yaml:"level" env:"LOG_LEVEL"`

	// Format 日志格式：console, json, text
	Format string `json:"format" yaml:"format" env:"LOG_FORMAT"`

	// AddSource 是否添加源文件信息（开发环境）
	AddSource bool `json:"add_source" yaml:"add_source" env:"LOG_ADD_SOURCE"`

	// Service 服务标识，写入每条日志的 service 字段
	Service string `json:"service" yaml:"service" env:"LOG_SERVICE"`
}

// NewConfigFromEnv 从环境变量创建配置
func NewConfigFromEnv() *Config {
	cfg := &Config{
		Level:     getEnvWithDefault("LOG_LEVEL", "info"),
		Format:    getEnvWithDefault("LOG_FORMAT", "console"),
		AddSource: getEnvBool("LOG_ADD_SOURCE", false),
		Service:   getEnvWithDefault("LOG_SERVICE", "beaconship-beacon"),
	}

	// 在开发环境自动设置
	if cfg.isDevelopment() {
		cfg.Level = "debug"
		cfg.Format = "console"
		cfg.AddSource = true
	}

	return cfg
}

// isDevelopment 检查是否为开发环境
func (c *Config) isDevelopment() bool {
	env := getEnvWithDefault("ENV", "production")
	return strings.ToLower(env) == "development"
}

// getEnvWithDefault 获取环境变量，带默认值
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool 获取布尔型环境变量
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}
