package discovery

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/grandcat/zeroconf"

	"github.com/beaconship/backend/internal/infrastructure/config"
	"github.com/beaconship/backend/internal/infrastructure/log"
)

// Advertiser mDNS 服务广播器
type Advertiser struct {
	mu        sync.Mutex
	server    *zeroconf.Server
	cfg       *config.DiscoveryConfig
	serverCfg *config.ServerConfig
	running   bool
	logger    *slog.Logger
}

// NewAdvertiser 创建 mDNS 广播器
func NewAdvertiser(cfg *config.DiscoveryConfig, serverCfg *config.ServerConfig) *Advertiser {
	return &Advertiser{
		cfg:       cfg,
		serverCfg: serverCfg,
		logger:    log.NewModuleLogger("discovery", "advertiser"),
	}
}

// Enabled 是否启用广播
func (a *Advertiser) Enabled() bool {
	return a.cfg != nil && a.cfg.Enabled
}

// InstanceName 广播使用的实例名
func (a *Advertiser) InstanceName() string {
	if a.cfg != nil && a.cfg.InstanceName != "" {
		return a.cfg.InstanceName
	}
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		return "beacon"
	}
	return "beacon-" + hostname
}

// Start 开始广播服务，未启用时直接返回
func (a *Advertiser) Start() error {
	if !a.Enabled() {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.running {
		return fmt.Errorf("advertiser is already running")
	}

	port := a.serverCfg.ListenPort()
	if port <= 0 {
		return fmt.Errorf("invalid listen port in %q", a.serverCfg.ListenAddr)
	}

	instance := a.InstanceName()
	txt := buildTxtRecords(map[string]string{
		"version": ProtocolVersion,
		"path":    "/ship",
	})

	server, err := zeroconf.Register(instance, ServiceType, Domain, port, txt, nil)
	if err != nil {
		return fmt.Errorf("failed to register service: %w", err)
	}

	a.server = server
	a.running = true

	a.logger.Info("mDNS advertiser started",
		"instance", instance,
		"service", ServiceType,
		"port", port,
	)
	return nil
}

// Stop 停止广播
func (a *Advertiser) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.running {
		return
	}

	if a.server != nil {
		a.server.Shutdown()
		a.server = nil
	}
	a.running = false

	a.logger.Info("mDNS advertiser stopped")
}

// IsRunning 是否正在广播
func (a *Advertiser) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}
