package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/beaconship/backend/internal/infrastructure/config"
)

// stringList 可重复的字符串参数
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, config.SplitList(v)...)
	return nil
}

// options 命令行参数
type options struct {
	configPath string
	listen     string
	appToken   string
	userTokens stringList
	interval   time.Duration
	mdns       bool
	set        map[string]bool
}

// parseFlags 解析命令行参数
func parseFlags(args []string, output io.Writer) (*options, error) {
	opts := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("beacon", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file (env "+config.EnvConfigFile+")")
	fs.StringVar(&opts.listen, "listen", "", "HTTP listen address, e.g. :8000 (env "+config.EnvListenAddr+")")
	fs.StringVar(&opts.appToken, "app-token", "", "Pushover app token (env "+config.EnvAppToken+")")
	fs.Var(&opts.userTokens, "user-token", "Pushover user token to notify, repeatable (env "+config.EnvUserTokens+")")
	fs.DurationVar(&opts.interval, "interval", 0, "sweep interval, e.g. 5s (env "+config.EnvSweepInterval+")")
	fs.BoolVar(&opts.mdns, "mdns", false, "advertise the beacon over mDNS (env "+config.EnvMDNS+")")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})
	return opts, nil
}

// apply 命令行参数覆盖配置文件和环境变量
func (o *options) apply(cfg *config.Config) {
	if o.set["listen"] {
		cfg.Server.ListenAddr = o.listen
	}
	if o.set["app-token"] {
		cfg.Notification.AppToken = o.appToken
	}
	if o.set["user-token"] {
		cfg.Notification.UserTokens = append([]string(nil), o.userTokens...)
	}
	if o.set["interval"] {
		cfg.Sweeper.Interval = o.interval
	}
	if o.set["mdns"] {
		cfg.Discovery.Enabled = o.mdns
	}
}
