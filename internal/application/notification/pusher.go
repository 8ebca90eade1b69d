package notification

import (
	"context"

	"github.com/beaconship/backend/internal/domain/notification"
)

// Pusher 推送接口（定义在 application 层）
// 一次调用向一个接收方发送一次，不做重试
type Pusher interface {
	Push(ctx context.Context, recipient string, n *notification.Notification) error
}
