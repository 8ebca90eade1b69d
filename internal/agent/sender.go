package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/beaconship/backend/internal/infrastructure/log"
)

// ErrHeartbeatRejected beacon 返回非 2xx
var ErrHeartbeatRejected = errors.New("heartbeat rejected")

// Sender 心跳发送器
type Sender struct {
	client *resty.Client
	cfg    *Config
	logger *slog.Logger
}

// NewSender 创建心跳发送器
func NewSender(cfg *Config) *Sender {
	client := resty.New().
		SetBaseURL(cfg.Server).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	return &Sender{
		client: client,
		cfg:    cfg,
		logger: log.NewModuleLogger("agent", "sender").With(
			"ship_id", cfg.UUID,
			"hostname", cfg.Hostname,
		),
	}
}

// SendOnce 发送一次心跳
func (s *Sender) SendOnce(ctx context.Context) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(s.cfg.HeartbeatRequest()).
		Post("/ship")
	if err != nil {
		return fmt.Errorf("failed to send heartbeat: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("%w: status %d: %s", ErrHeartbeatRejected, resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
	return nil
}

// Run 立即发送一次心跳，之后按间隔发送，直到 ctx 结束
// 失败只记录日志，等下一个周期重试
func (s *Sender) Run(ctx context.Context) error {
	s.logger.Info("Ship agent started",
		"server", s.cfg.Server,
		"interval", s.cfg.Interval.String(),
		"max_offline", s.cfg.MaxOffline.String(),
	)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	failures := 0
	for {
		if err := s.SendOnce(ctx); err != nil {
			if ctx.Err() != nil {
				break
			}
			failures++
			s.logger.Warn("Heartbeat failed",
				"error", err,
				"consecutive_failures", failures,
			)
		} else {
			if failures > 0 {
				s.logger.Info("Heartbeat recovered", "after_failures", failures)
			}
			failures = 0
			s.logger.Debug("Heartbeat sent")
		}

		select {
		case <-ctx.Done():
			s.logger.Info("Ship agent stopped")
			return nil
		case <-ticker.C:
		}
	}

	s.logger.Info("Ship agent stopped")
	return nil
}
