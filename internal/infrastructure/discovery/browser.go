package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"

	"github.com/beaconship/backend/internal/infrastructure/log"
)

// Browser mDNS 服务发现器
type Browser struct {
	logger *slog.Logger
}

// NewBrowser 创建 mDNS 发现器
func NewBrowser() *Browser {
	return &Browser{
		logger: log.NewModuleLogger("discovery", "browser"),
	}
}

// Discover 在 timeout 内收集局域网内的 beacon
func (b *Browser) Discover(ctx context.Context, timeout time.Duration) ([]ServiceInfo, error) {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry, 10)

	var mu sync.Mutex
	var services []ServiceInfo
	go func() {
		for entry := range entries {
			if service := b.parseServiceEntry(entry); service != nil {
				mu.Lock()
				services = append(services, *service)
				mu.Unlock()
			}
		}
	}()

	browseCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := resolver.Browse(browseCtx, ServiceType, Domain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse services: %w", err)
	}

	<-browseCtx.Done()

	mu.Lock()
	defer mu.Unlock()
	result := make([]ServiceInfo, len(services))
	copy(result, services)

	b.logger.Debug("mDNS discovery completed", "count", len(result))
	return result, nil
}

// FindBeacon 返回发现的第一个 beacon 的 HTTP 地址
func (b *Browser) FindBeacon(ctx context.Context, timeout time.Duration) (string, error) {
	services, err := b.Discover(ctx, timeout)
	if err != nil {
		return "", err
	}
	for _, svc := range services {
		if url, err := svc.BaseURL(); err == nil {
			b.logger.Info("Beacon discovered",
				"instance", svc.InstanceName,
				"url", url,
				"version", svc.Version(),
			)
			return url, nil
		}
	}
	return "", ErrNoBeacon
}

// parseServiceEntry 解析服务条目
func (b *Browser) parseServiceEntry(entry *zeroconf.ServiceEntry) *ServiceInfo {
	if entry == nil {
		return nil
	}

	var ips []string
	for _, ip := range entry.AddrIPv4 {
		ips = append(ips, ip.String())
	}

	// 如果没有 IPv4 地址，跳过
	if len(ips) == 0 {
		b.logger.Debug("skipping service without IPv4 address",
			"instance", entry.Instance,
		)
		return nil
	}

	txtRecords := make(map[string]string)
	for _, txt := range entry.Text {
		key, value := parseTxtRecord(txt)
		if key != "" {
			txtRecords[key] = value
		}
	}

	return &ServiceInfo{
		InstanceName: entry.Instance,
		HostName:     entry.HostName,
		Port:         entry.Port,
		IPs:          ips,
		TxtRecords:   txtRecords,
	}
}
