// ship 船只端：定期向 beacon 上报心跳，停止上报后由 beacon 判定沉没
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/beaconship/backend/internal/agent"
	"github.com/beaconship/backend/internal/infrastructure/discovery"
	applog "github.com/beaconship/backend/internal/infrastructure/log"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := applog.NewConfigFromEnv()
	if os.Getenv("LOG_SERVICE") == "" {
		cfg.Service = "beaconship-ship"
	}
	applog.Init(cfg)
	logger := applog.NewModuleLogger("main", "ship")

	agentCfg, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := agentCfg.Complete(); err != nil {
		logger.Error("Invalid agent configuration", "error", err)
		return 1
	}
	if err := agentCfg.Validate(); err != nil {
		logger.Error("Invalid agent configuration", "error", err)
		return 1
	}
	if agentCfg.TooTight() {
		logger.Warn("max_offline is less than 3 heartbeat intervals, a single lost heartbeat may sink this ship",
			"interval", agentCfg.Interval.String(),
			"max_offline", agentCfg.MaxOffline.String(),
		)
	}

	if err := agent.ResolveServer(ctx, agentCfg, discovery.NewBrowser()); err != nil {
		logger.Error("Cannot locate beacon", "error", err)
		return 1
	}

	if err := agent.NewSender(agentCfg).Run(ctx); err != nil {
		logger.Error("Ship agent failed", "error", err)
		return 1
	}
	return 0
}

// parseFlags 解析命令行参数
func parseFlags(args []string) (*agent.Config, error) {
	cfg := agent.NewConfig()

	fs := flag.NewFlagSet("ship", flag.ContinueOnError)
	fs.StringVar(&cfg.Server, "server", "", "beacon address, e.g. http://beacon:8000")
	fs.StringVar(&cfg.Hostname, "hostname", "", "hostname to report (default: os hostname)")
	fs.StringVar(&cfg.UUID, "uuid", "", "ship identity (default: random uuid per process)")
	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "heartbeat interval")
	fs.DurationVar(&cfg.MaxOffline, "max-offline", cfg.MaxOffline, "how long the beacon waits before declaring this ship sunk")
	fs.BoolVar(&cfg.Discover, "discover", false, "find the beacon over mDNS when --server is not set")
	fs.DurationVar(&cfg.DiscoverTimeout, "discover-timeout", cfg.DiscoverTimeout, "how long to wait for mDNS answers")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}
