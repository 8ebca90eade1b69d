package discovery

import "github.com/google/wire"

// ProviderSet mDNS 基础设施 ProviderSet
var ProviderSet = wire.NewSet(NewAdvertiser)
