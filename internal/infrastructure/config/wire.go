package config

import "github.com/google/wire"

// ProviderSet 配置 ProviderSet
// *Config 由 main 加载后作为注入参数传入
var ProviderSet = wire.NewSet(
	NewServerConfig,
	NewSweeperConfig,
	NewNotificationConfig,
	NewDiscoveryConfig,
)
