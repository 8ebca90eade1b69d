package config

import (
	"time"

	"github.com/beaconship/backend/internal/domain/fleet"
)

// 环境变量名
const (
	EnvConfigFile       = "BEACON_CONFIG"
	EnvListenAddr       = "BEACON_LISTEN"
	EnvSweepInterval    = "SWEEP_INTERVAL"
	EnvAppToken         = "APP_TOKEN"
	EnvUserTokens       = "USER_TOKENS"
	EnvPushoverEndpoint = "PUSHOVER_ENDPOINT"
	EnvNotifyRegistered = "NOTIFY_REGISTERED"
	EnvMDNS             = "BEACON_MDNS"
)

// DefaultPushoverEndpoint Pushover 消息接口地址
const DefaultPushoverEndpoint = "https://api.pushover.net/1/messages.json"

// Config 应用配置
// 启动时一次性加载，运行期间不支持动态修改
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Sweeper      SweeperConfig      `yaml:"sweeper"`
	Notification NotificationConfig `yaml:"notification"`
	Discovery    DiscoveryConfig    `yaml:"discovery"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	// ListenAddr HTTP 监听地址，例如 ":8000" 或 "0.0.0.0:8000"
	ListenAddr string `yaml:"listen_addr"`
	// ShutdownTimeout 优雅关闭等待时间
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// SweeperConfig 扫描器配置
type SweeperConfig struct {
	// Interval 扫描沉没船只的间隔
	Interval time.Duration `yaml:"interval"`
}

// NotificationConfig 通知配置
type NotificationConfig struct {
	// AppToken Pushover 应用凭据
	AppToken string `yaml:"app_token"`
	// UserTokens 接收方列表（Pushover user key）
	UserTokens []string `yaml:"user_tokens"`
	// Endpoint 推送接口地址
	Endpoint string `yaml:"endpoint"`
	// Timeout 单次推送超时
	Timeout time.Duration `yaml:"timeout"`
	// NotifyRegistered 新船只注册时是否推送
	NotifyRegistered bool `yaml:"notify_registered"`
	// HistorySize 内存中保留的近期通知条数
	HistorySize int `yaml:"history_size"`
}

// DiscoveryConfig mDNS 广播配置
type DiscoveryConfig struct {
	// Enabled 是否在局域网广播 beacon 服务
	Enabled bool `yaml:"enabled"`
	// InstanceName mDNS 实例名，留空时使用主机名
	InstanceName string `yaml:"instance_name"`
}

// NewConfig 创建配置（默认值）
func NewConfig() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:      ":8000",
			ShutdownTimeout: 5 * time.Second,
		},
		Sweeper: SweeperConfig{
			Interval: fleet.DefaultSweepInterval,
		},
		Notification: NotificationConfig{
			Endpoint:         DefaultPushoverEndpoint,
			Timeout:          10 * time.Second,
			NotifyRegistered: true,
			HistorySize:      100,
		},
		Discovery: DiscoveryConfig{
			Enabled: false,
		},
	}
}

// NewServerConfig 创建服务器配置
func NewServerConfig(cfg *Config) *ServerConfig {
	return &cfg.Server
}

// NewSweeperConfig 创建扫描器配置
func NewSweeperConfig(cfg *Config) *SweeperConfig {
	return &cfg.Sweeper
}

// NewNotificationConfig 创建通知配置
func NewNotificationConfig(cfg *Config) *NotificationConfig {
	return &cfg.Notification
}

// NewDiscoveryConfig 创建 mDNS 配置
func NewDiscoveryConfig(cfg *Config) *DiscoveryConfig {
	return &cfg.Discovery
}
