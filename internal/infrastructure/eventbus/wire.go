package eventbus

import (
	"github.com/beaconship/backend/internal/domain/events"
	"github.com/google/wire"
)

// NewPublisher 只暴露发布能力给生产者
func NewPublisher(bus events.EventBus) events.Publisher {
	return bus
}

// ProviderSet 事件总线 ProviderSet
var ProviderSet = wire.NewSet(
	NewEventBus,
	NewPublisher,
)
