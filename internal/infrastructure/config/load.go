package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 配置不合法，进程应在启动前退出
var ErrInvalidConfig = errors.New("invalid config")

// Load 按 默认值 -> 配置文件 -> 环境变量 的顺序加载配置
// path 为空时读取 BEACON_CONFIG，仍为空则跳过配置文件
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile 从 YAML 文件加载配置，覆盖已有字段
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}
	return nil
}

// ApplyEnv 使用环境变量覆盖配置
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvListenAddr); v != "" {
		c.Server.ListenAddr = v
	}
	if v := os.Getenv(EnvSweepInterval); v != "" {
		d, err := parseSeconds(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvSweepInterval, err)
		}
		c.Sweeper.Interval = d
	}
	if v := os.Getenv(EnvAppToken); v != "" {
		c.Notification.AppToken = v
	}
	if v := os.Getenv(EnvUserTokens); v != "" {
		c.Notification.UserTokens = SplitList(v)
	}
	if v := os.Getenv(EnvPushoverEndpoint); v != "" {
		c.Notification.Endpoint = v
	}
	if v := os.Getenv(EnvNotifyRegistered); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvNotifyRegistered, err)
		}
		c.Notification.NotifyRegistered = b
	}
	if v := os.Getenv(EnvMDNS); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvMDNS, err)
		}
		c.Discovery.Enabled = b
	}
	return nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Server.ListenAddr); err != nil {
		return fmt.Errorf("%w: listen address %q: %v", ErrInvalidConfig, c.Server.ListenAddr, err)
	}
	if c.Sweeper.Interval <= 0 {
		return fmt.Errorf("%w: sweep interval must be positive, got %s", ErrInvalidConfig, c.Sweeper.Interval)
	}
	if len(c.Notification.UserTokens) > 0 && c.Notification.AppToken == "" {
		return fmt.Errorf("%w: app token is required when user tokens are configured", ErrInvalidConfig)
	}
	if c.Notification.Endpoint == "" {
		return fmt.Errorf("%w: notification endpoint is empty", ErrInvalidConfig)
	}
	if c.Notification.Timeout <= 0 {
		return fmt.Errorf("%w: notification timeout must be positive", ErrInvalidConfig)
	}
	return nil
}

// ListenPort 返回监听端口号
func (c *ServerConfig) ListenPort() int {
	_, port, err := net.SplitHostPort(c.ListenAddr)
	if err != nil {
		return 0
	}
	p, _ := strconv.Atoi(port)
	return p
}

// SplitList 按逗号拆分列表，去掉空白项
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseSeconds 解析秒数，也接受 "5s" 形式的时长
func parseSeconds(s string) (time.Duration, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(s)
}
