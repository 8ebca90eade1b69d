// Package agent 实现船只端：按固定间隔向 beacon 上报心跳
package agent

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/beaconship/backend/internal/domain/fleet"
	"github.com/google/uuid"
)

// ErrInvalidAgentConfig 船只端配置不合法
var ErrInvalidAgentConfig = errors.New("invalid agent config")

// DefaultDiscoverTimeout mDNS 发现 beacon 的等待时间
const DefaultDiscoverTimeout = 3 * time.Second

// Config 船只端配置
type Config struct {
	// Server beacon 地址，例如 http://beacon:8000
	Server string
	// Hostname 上报的主机名
	Hostname string
	// UUID 船只标识，进程生命周期内不变
	UUID string
	// Interval 心跳间隔
	Interval time.Duration
	// MaxOffline beacon 判定沉没的离线时长
	MaxOffline time.Duration
	// Discover 未指定 Server 时通过 mDNS 查找 beacon
	Discover bool
	// DiscoverTimeout mDNS 等待时间
	DiscoverTimeout time.Duration
	// RequestTimeout 单次心跳请求超时
	RequestTimeout time.Duration
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		Interval:        fleet.DefaultHeartbeatInterval,
		MaxOffline:      fleet.DefaultMaxOffline,
		DiscoverTimeout: DefaultDiscoverTimeout,
		RequestTimeout:  5 * time.Second,
	}
}

// Complete 补齐未指定的主机名和 uuid
func (c *Config) Complete() error {
	if strings.TrimSpace(c.Hostname) == "" {
		hostname, err := os.Hostname()
		if err != nil {
			return fmt.Errorf("%w: cannot determine hostname: %v", ErrInvalidAgentConfig, err)
		}
		c.Hostname = hostname
	}
	if c.UUID == "" {
		c.UUID = uuid.New().String()
	}
	c.Server = strings.TrimRight(c.Server, "/")
	return nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Server == "" && !c.Discover {
		return fmt.Errorf("%w: a server address is required unless discovery is enabled", ErrInvalidAgentConfig)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive", ErrInvalidAgentConfig)
	}
	if c.MaxOffline < time.Second {
		return fmt.Errorf("%w: max offline must be at least 1s", ErrInvalidAgentConfig)
	}
	return nil
}

// TooTight max_offline 小于心跳间隔的 3 倍时，一次丢包就可能被判定沉没
func (c *Config) TooTight() bool {
	return c.MaxOffline < time.Duration(fleet.MinMaxOfflineFactor)*c.Interval
}

// HeartbeatRequest 构造心跳请求体
func (c *Config) HeartbeatRequest() fleet.HeartbeatRequest {
	return fleet.HeartbeatRequest{
		Hostname:   c.Hostname,
		MaxOffline: int64(c.MaxOffline / time.Second),
		UUID:       c.UUID,
	}
}
