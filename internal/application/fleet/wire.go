package fleet

import "github.com/google/wire"

// ProviderSet 船只应用层 ProviderSet
var ProviderSet = wire.NewSet(
	NewService,
	NewSweeper,
)
