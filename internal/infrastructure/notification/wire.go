package notification

import (
	"github.com/beaconship/backend/internal/domain/notification"
	"github.com/google/wire"
)

// ProviderSet 通知基础设施层 ProviderSet
var ProviderSet = wire.NewSet(
	NewMemoryRepository,
	NewPushoverPusher,
	// 接口绑定：domain.Repository -> infrastructure.Repository
	wire.Bind(
		new(notification.Repository),
		new(*MemoryRepository),
	),
)
