package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/beaconship/backend/internal/domain/fleet"
)

var (
	// ErrInvalidTitle 无效的标题
	ErrInvalidTitle = errors.New("invalid title")
	// ErrEmptyMessage 消息内容为空
	ErrEmptyMessage = errors.New("empty message")
)

// Service 领域服务（纯业务逻辑）
type Service struct{}

// NewService 创建领域服务
func NewService() *Service {
	return &Service{}
}

// Validate 验证通知内容（领域规则）
func (s *Service) Validate(n *Notification) error {
	if strings.TrimSpace(n.Title) == "" {
		return ErrInvalidTitle
	}
	if strings.TrimSpace(n.Message) == "" {
		return ErrEmptyMessage
	}
	return nil
}

// CalculatePriority 计算推送优先级
// 沉没通知使用高优先级，推送服务会绕过接收方的免打扰时段
func (s *Service) CalculatePriority(n *Notification) int {
	switch n.Type {
	case TypeError:
		return 1
	case TypeWarning:
		return 0
	default:
		return -1
	}
}

// RenderSunk 生成船只沉没通知内容
func (s *Service) RenderSunk(ship fleet.ShipRecord) (title, message string) {
	var b strings.Builder
	fmt.Fprintf(&b, "Ship has sunk %s - last seen %s\n\n", ship.Hostname, ship.LastSeen.Format(time.RFC3339))
	fmt.Fprintf(&b, "uuid: %s\n", ship.ID)
	fmt.Fprintf(&b, "max offline: %s\n", ship.MaxOffline)
	fmt.Fprintf(&b, "deadline: %s", ship.Deadline().Format(time.RFC3339))
	return "Ship has sunk", b.String()
}

// RenderRegistered 生成船只注册通知内容
func (s *Service) RenderRegistered(ship fleet.ShipRecord) (title, message string) {
	var b strings.Builder
	fmt.Fprintf(&b, "Ship %s has registered\n\n", ship.Hostname)
	fmt.Fprintf(&b, "uuid: %s\n", ship.ID)
	fmt.Fprintf(&b, "max offline: %s", ship.MaxOffline)
	return "Ship registered", b.String()
}
