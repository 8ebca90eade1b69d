package registry

import (
	"github.com/beaconship/backend/internal/domain/fleet"
	"github.com/google/wire"
)

// NewRegistry 创建进程级注册表
func NewRegistry() *MemoryRegistry {
	return NewMemoryRegistry()
}

// ProviderSet 注册表 ProviderSet
var ProviderSet = wire.NewSet(
	NewRegistry,
	wire.Bind(new(fleet.Registry), new(*MemoryRegistry)),
)
