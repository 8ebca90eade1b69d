package application

import (
	"github.com/beaconship/backend/internal/application/fleet"
	"github.com/beaconship/backend/internal/application/notification"
	"github.com/google/wire"
)

// ProviderSet Application 层总 ProviderSet
var ProviderSet = wire.NewSet(
	fleet.ProviderSet,
	notification.ProviderSet,
)
