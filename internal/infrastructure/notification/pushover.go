package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	appNotification "github.com/beaconship/backend/internal/application/notification"
	"github.com/beaconship/backend/internal/domain/notification"
	"github.com/beaconship/backend/internal/infrastructure/config"
	"github.com/beaconship/backend/internal/infrastructure/log"
	"github.com/go-resty/resty/v2"
)

// ErrPushRejected 推送服务返回非 2xx 状态码
var ErrPushRejected = errors.New("push rejected")

// pushoverMessage Pushover 消息请求体
type pushoverMessage struct {
	Token    string `json:"token"`
	User     string `json:"user"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority int    `json:"priority,omitempty"`
}

// PushoverPusher 基于 Pushover HTTP 接口的推送实现
type PushoverPusher struct {
	client    *resty.Client
	endpoint  string
	appToken  string
	domainSvc *notification.Service
	logger    *slog.Logger
}

// NewPushoverPusher 创建 Pushover 推送器
func NewPushoverPusher(cfg *config.NotificationConfig, domainSvc *notification.Service) *PushoverPusher {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = config.DefaultPushoverEndpoint
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json")

	return &PushoverPusher{
		client:    client,
		endpoint:  endpoint,
		appToken:  cfg.AppToken,
		domainSvc: domainSvc,
		logger:    log.NewModuleLogger("notification", "pushover"),
	}
}

// Push 向单个接收方发送一次消息
func (p *PushoverPusher) Push(ctx context.Context, recipient string, n *notification.Notification) error {
	msg := pushoverMessage{
		Token:    p.appToken,
		User:     recipient,
		Title:    n.Title,
		Message:  n.Message,
		Priority: p.domainSvc.CalculatePriority(n),
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(msg).
		Post(p.endpoint)
	if err != nil {
		return fmt.Errorf("failed to send pushover message: %w", err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("%w: status %d: %s", ErrPushRejected, resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	p.logger.Debug("Pushover accepted message",
		"notification_id", n.ID,
		"status", resp.StatusCode(),
	)
	return nil
}

// 编译时检查接口实现
var _ appNotification.Pusher = (*PushoverPusher)(nil)
