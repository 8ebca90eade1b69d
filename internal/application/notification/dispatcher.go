package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/beaconship/backend/internal/domain/events"
	"github.com/beaconship/backend/internal/domain/fleet"
	"github.com/beaconship/backend/internal/domain/notification"
	"github.com/beaconship/backend/internal/infrastructure/config"
	"github.com/beaconship/backend/internal/infrastructure/log"
	"github.com/google/uuid"
)

// Dispatcher 通知分发器
// 对每个接收方各尝试一次推送，互不影响；失败只记录日志，不向调用方返回错误
type Dispatcher struct {
	pusher           Pusher
	domainSvc        *notification.Service
	repo             notification.Repository
	recipients       []string
	notifyRegistered bool
	timeout          time.Duration
	now              func() time.Time
	logger           *slog.Logger
}

// NewDispatcher 创建通知分发器
func NewDispatcher(
	pusher Pusher,
	domainSvc *notification.Service,
	repo notification.Repository,
	cfg *config.NotificationConfig,
) *Dispatcher {
	recipients := make([]string, len(cfg.UserTokens))
	copy(recipients, cfg.UserTokens)

	return &Dispatcher{
		pusher:           pusher,
		domainSvc:        domainSvc,
		repo:             repo,
		recipients:       recipients,
		notifyRegistered: cfg.NotifyRegistered,
		timeout:          cfg.Timeout,
		now:              time.Now,
		logger:           log.NewModuleLogger("notification", "dispatcher"),
	}
}

// Recipients 返回接收方数量
func (d *Dispatcher) Recipients() int {
	return len(d.recipients)
}

// HandleEvent 实现 events.Handler
// ship.sunk 一定推送；ship.registered 按配置推送；其余事件忽略
func (d *Dispatcher) HandleEvent(event events.Event) error {
	shipEvent, ok := event.(*events.ShipEvent)
	if !ok {
		return nil
	}

	switch shipEvent.Type() {
	case events.ShipSunk:
		d.DispatchSunk(context.Background(), shipEvent.Ship)
	case events.ShipRegistered:
		if d.notifyRegistered {
			d.DispatchRegistered(context.Background(), shipEvent.Ship)
		}
	}
	return nil
}

// DispatchSunk 推送船只沉没通知
func (d *Dispatcher) DispatchSunk(ctx context.Context, ship fleet.ShipRecord) *notification.Notification {
	title, message := d.domainSvc.RenderSunk(ship)
	return d.Dispatch(ctx, d.newNotification(ship, notification.TypeError, title, message))
}

// DispatchRegistered 推送船只注册通知
func (d *Dispatcher) DispatchRegistered(ctx context.Context, ship fleet.ShipRecord) *notification.Notification {
	title, message := d.domainSvc.RenderRegistered(ship)
	return d.Dispatch(ctx, d.newNotification(ship, notification.TypeInfo, title, message))
}

// Dispatch 向所有接收方并发推送，等待全部尝试结束
func (d *Dispatcher) Dispatch(ctx context.Context, n *notification.Notification) *notification.Notification {
	if err := d.domainSvc.Validate(n); err != nil {
		d.logger.Error("Refusing to dispatch invalid notification",
			"ship_id", n.ShipID,
			"error", err,
		)
		return n
	}

	if len(d.recipients) == 0 {
		d.logger.Debug("No recipients configured, notification not sent",
			"ship_id", n.ShipID,
			"title", n.Title,
		)
		d.save(n, nil)
		return n
	}

	deliveries := make([]notification.Delivery, len(d.recipients))
	var wg sync.WaitGroup
	for i, recipient := range d.recipients {
		wg.Add(1)
		go func(i int, recipient string) {
			defer wg.Done()
			deliveries[i] = d.pushOne(ctx, recipient, n)
		}(i, recipient)
	}
	wg.Wait()

	d.save(n, deliveries)
	return n
}

// pushOne 向单个接收方推送一次
func (d *Dispatcher) pushOne(ctx context.Context, recipient string, n *notification.Notification) notification.Delivery {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	delivery := notification.Delivery{
		NotificationID: n.ID,
		Recipient:      recipient,
		AttemptedAt:    d.now(),
	}

	if err := d.pusher.Push(ctx, recipient, n); err != nil {
		d.logger.Warn("Notification delivery failed",
			"notification_id", n.ID,
			"ship_id", n.ShipID,
			"recipient", maskRecipient(recipient),
			"error", err,
		)
		delivery.Error = err.Error()
		return delivery
	}

	d.logger.Info("Notification sent",
		"notification_id", n.ID,
		"ship_id", n.ShipID,
		"recipient", maskRecipient(recipient),
	)
	delivery.Delivered = true
	return delivery
}

func (d *Dispatcher) newNotification(ship fleet.ShipRecord, typ notification.Type, title, message string) *notification.Notification {
	return &notification.Notification{
		ID:        uuid.New().String(),
		ShipID:    string(ship.ID),
		Title:     title,
		Message:   message,
		Type:      typ,
		CreatedAt: d.now(),
	}
}

func (d *Dispatcher) save(n *notification.Notification, deliveries []notification.Delivery) {
	if d.repo == nil {
		return
	}
	if err := d.repo.Save(n, deliveries); err != nil {
		d.logger.Warn("Failed to record notification", "notification_id", n.ID, "error", err)
	}
}

// Recent 返回近期通知，未配置仓储时返回空列表
func (d *Dispatcher) Recent(limit int) ([]*NotificationDTO, error) {
	if d.repo == nil {
		return []*NotificationDTO{}, nil
	}
	records, err := d.repo.Recent(limit)
	if err != nil {
		return nil, err
	}
	result := make([]*NotificationDTO, 0, len(records))
	for _, r := range records {
		result = append(result, toDTO(r))
	}
	return result, nil
}

// 编译时检查接口实现
var _ events.Handler = (*Dispatcher)(nil)
