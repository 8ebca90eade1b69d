// @title beaconship Beacon API
// @version 1.0
// @description beaconship 信标服务 API：船只心跳、查询与沉没通知
// @host localhost:8000
// @BasePath /
// @schemes http
package main

import (
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/beaconship/backend/internal/infrastructure/config"
	applog "github.com/beaconship/backend/internal/infrastructure/log"
	"github.com/beaconship/backend/internal/infrastructure/singleton"
	"github.com/beaconship/backend/internal/wire"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// 初始化日志系统
	applog.Init(nil)
	logger := applog.NewModuleLogger("main", "beacon")

	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		return 1
	}
	opts.apply(cfg)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		return 1
	}
	if len(cfg.Notification.UserTokens) == 0 {
		logger.Warn("No recipients configured, sunk ships will only be logged")
	}

	// 单例锁检查：占用监听地址，HTTP 服务器直接复用这个 listener
	listener, err := singleton.CheckAndLock(cfg.Server.ListenAddr)
	if err != nil {
		if errors.Is(err, singleton.ErrAlreadyRunning) {
			logger.Info("Another beacon is already running, exiting", "addr", cfg.Server.ListenAddr)
			return 0
		}
		logger.Error("Failed to acquire listen address", "error", err)
		return 1
	}

	app, err := wire.InitializeApp(cfg)
	if err != nil {
		_ = listener.Close()
		logger.Error("Failed to initialize application", "error", err)
		return 1
	}

	if err := app.Start(listener); err != nil {
		_ = listener.Close()
		logger.Error("Failed to start application", "error", err)
		return 1
	}

	// 优雅关闭
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	code := 0
	select {
	case sig := <-sigChan:
		logger.Info("Shutting down beacon", "signal", sig.String())
	case err := <-app.Errors():
		logger.Error("Beacon failed", "error", err)
		code = 1
	}

	if err := app.Stop(); err != nil {
		logger.Error("Error during shutdown", "error", err)
		code = 1
	}
	return code
}
