package notification

// Repository 通知记录仓储接口
// 仅保存在内存中的近期通知，用于排查投递问题
type Repository interface {
	Save(notification *Notification, deliveries []Delivery) error
	Recent(limit int) ([]*Record, error)
}

// Record 一条通知及其投递结果
type Record struct {
	Notification *Notification `json:"notification"`
	Deliveries   []Delivery    `json:"deliveries"`
}
