package wire

import (
	"log/slog"
	"net"
	"sync"

	appFleet "github.com/beaconship/backend/internal/application/fleet"
	appNotification "github.com/beaconship/backend/internal/application/notification"
	"github.com/beaconship/backend/internal/domain/events"
	"github.com/beaconship/backend/internal/infrastructure/discovery"
	applog "github.com/beaconship/backend/internal/infrastructure/log"
	"github.com/beaconship/backend/internal/infrastructure/websocket"
	"github.com/beaconship/backend/internal/interfaces"
)

// App 应用主结构，组合所有服务
type App struct {
	HTTPServer *interfaces.HTTPServer
	sweeper    *appFleet.Sweeper
	dispatcher *appNotification.Dispatcher
	eventBus   events.EventBus
	wsHub      *websocket.Hub
	advertiser *discovery.Advertiser
	logger     *slog.Logger

	serveErr chan error
	stopOnce sync.Once
	stopErr  error
}

// NewApp 创建应用实例
func NewApp(
	httpServer *interfaces.HTTPServer,
	sweeper *appFleet.Sweeper,
	dispatcher *appNotification.Dispatcher,
	eventBus events.EventBus,
	wsHub *websocket.Hub,
	advertiser *discovery.Advertiser,
) *App {
	return &App{
		HTTPServer: httpServer,
		sweeper:    sweeper,
		dispatcher: dispatcher,
		eventBus:   eventBus,
		wsHub:      wsHub,
		advertiser: advertiser,
		logger:     applog.NewModuleLogger("app", "main"),
		serveErr:   make(chan error, 1),
	}
}

// Start 启动所有服务
// listener 由单例锁提供，为 nil 时 HTTP 服务器自行监听
func (a *App) Start(listener net.Listener) error {
	a.logger.Info("Starting beacon",
		"recipients", a.dispatcher.Recipients(),
		"sweep_interval", a.sweeper.Interval().String(),
	)

	// 先注册订阅者，再启动会产生事件的组件
	a.setupEventSubscribers()

	a.wsHub.Start()
	a.sweeper.Start()

	if err := a.advertiser.Start(); err != nil {
		// 广播失败不影响心跳服务，船只仍可显式指定地址
		a.logger.Warn("Failed to start mDNS advertiser", "error", err)
	}

	// 启动 HTTP 服务器（goroutine）
	go func() {
		if err := a.HTTPServer.Start(listener); err != nil {
			a.logger.Error("HTTP server stopped unexpectedly", "error", err)
			a.serveErr <- err
		}
	}()

	a.logger.Info("Beacon started")
	return nil
}

// setupEventSubscribers 注册事件订阅者
func (a *App) setupEventSubscribers() {
	a.eventBus.SubscribeMultiple(
		[]events.EventType{
			events.ShipSunk,
			events.ShipRegistered,
		},
		a.dispatcher,
	)
	a.logger.Debug("Dispatcher subscribed to fleet events")

	a.eventBus.SubscribeMultiple(events.AllShipEvents, a.wsHub)
	a.logger.Debug("Event stream hub subscribed to fleet events")
}

// Errors HTTP 服务器异常退出时收到错误
func (a *App) Errors() <-chan error {
	return a.serveErr
}

// Stop 停止所有服务，重复调用返回第一次的结果
func (a *App) Stop() error {
	a.stopOnce.Do(func() {
		a.stopErr = a.stop()
	})
	return a.stopErr
}

func (a *App) stop() error {
	a.logger.Info("Stopping beacon")

	// 不再产生新的沉没事件
	a.sweeper.Stop()

	// 等待进行中的推送结束，推送本身受超时约束
	a.eventBus.Close()
	a.logger.Info("Event bus closed")

	a.wsHub.Stop()
	a.advertiser.Stop()

	if err := a.HTTPServer.Stop(); err != nil {
		a.logger.Error("Failed to stop HTTP server",
			"error", err,
		)
		return err
	}

	a.logger.Info("Beacon stopped")
	return nil
}
