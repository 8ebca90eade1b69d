//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/beaconship/backend/internal/application"
	appNotification "github.com/beaconship/backend/internal/application/notification"
	"github.com/beaconship/backend/internal/domain/notification"
	"github.com/beaconship/backend/internal/infrastructure"
	"github.com/beaconship/backend/internal/infrastructure/config"
	infraNotification "github.com/beaconship/backend/internal/infrastructure/notification"
	"github.com/beaconship/backend/internal/interfaces"
	"github.com/google/wire"
)

// InitializeApp 按配置组装 beacon 的全部组件
func InitializeApp(cfg *config.Config) (*App, error) {
	wire.Build(
		// 按层组合 ProviderSet
		infrastructure.ProviderSet, // 基础设施层
		notification.ProviderSet,   // 领域层（按需引入）
		application.ProviderSet,    // 应用层
		interfaces.ProviderSet,     // 接口层
		// 接口绑定：application.Pusher -> infrastructure.Pusher
		wire.Bind(
			new(appNotification.Pusher),
			new(*infraNotification.PushoverPusher),
		),
		NewApp, // 组合所有服务的应用结构
	)
	return nil, nil
}
