package infrastructure

import (
	"github.com/beaconship/backend/internal/infrastructure/config"
	"github.com/beaconship/backend/internal/infrastructure/discovery"
	"github.com/beaconship/backend/internal/infrastructure/eventbus"
	"github.com/beaconship/backend/internal/infrastructure/notification"
	"github.com/beaconship/backend/internal/infrastructure/registry"
	"github.com/beaconship/backend/internal/infrastructure/websocket"
	"github.com/google/wire"
)

// ProviderSet Infrastructure 层总 ProviderSet
var ProviderSet = wire.NewSet(
	config.ProviderSet,
	registry.ProviderSet,
	eventbus.ProviderSet,
	websocket.ProviderSet,
	notification.ProviderSet,
	discovery.ProviderSet,
)
