package agent

import (
	"context"
	"fmt"
	"time"
)

// BeaconFinder 查找 beacon 地址
type BeaconFinder interface {
	FindBeacon(ctx context.Context, timeout time.Duration) (string, error)
}

// ResolveServer 未指定 Server 且允许发现时，通过 finder 查找 beacon
func ResolveServer(ctx context.Context, cfg *Config, finder BeaconFinder) error {
	if cfg.Server != "" {
		return nil
	}
	if !cfg.Discover || finder == nil {
		return fmt.Errorf("%w: no server address", ErrInvalidAgentConfig)
	}

	url, err := finder.FindBeacon(ctx, cfg.DiscoverTimeout)
	if err != nil {
		return fmt.Errorf("failed to discover beacon: %w", err)
	}
	cfg.Server = url
	return nil
}
