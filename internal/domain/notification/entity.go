package notification

import "time"

// Notification 通知实体
type Notification struct {
	ID        string    `json:"id"`
	ShipID    string    `json:"ship_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      Type      `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Type 通知类型
type Type int

const (
	// TypeInfo 信息通知（船只注册）
	TypeInfo Type = iota + 1
	// TypeWarning 警告通知
	TypeWarning
	// TypeError 错误通知（船只沉没）
	TypeError
)

// String 返回类型名称
func (t Type) String() string {
	switch t {
	case TypeInfo:
		return "info"
	case TypeWarning:
		return "warning"
	case TypeError:
		return "error"
	default:
		return "unknown"
	}
}

// Delivery 一次投递的结果
type Delivery struct {
	NotificationID string    `json:"notification_id"`
	Recipient      string    `json:"recipient"`
	Delivered      bool      `json:"delivered"`
	Error          string    `json:"error,omitempty"`
	AttemptedAt    time.Time `json:"attempted_at"`
}
