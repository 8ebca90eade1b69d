package notification

import (
	"time"

	"github.com/beaconship/backend/internal/domain/notification"
)

// NotificationDTO 通知响应
type NotificationDTO struct {
	ID         string        `json:"id"`
	ShipID     string        `json:"ship_id"`
	Title      string        `json:"title"`
	Message    string        `json:"message"`
	Type       string        `json:"type"`
	CreatedAt  string        `json:"created_at"`
	Deliveries []DeliveryDTO `json:"deliveries"`
}

// DeliveryDTO 投递结果
type DeliveryDTO struct {
	Recipient string `json:"recipient"`
	Delivered bool   `json:"delivered"`
	Error     string `json:"error,omitempty"`
}

// toDTO 转换为 DTO，接收方只保留末尾 4 位
func toDTO(r *notification.Record) *NotificationDTO {
	n := r.Notification
	dto := &NotificationDTO{
		ID:         n.ID,
		ShipID:     n.ShipID,
		Title:      n.Title,
		Message:    n.Message,
		Type:       n.Type.String(),
		CreatedAt:  n.CreatedAt.Format(time.RFC3339),
		Deliveries: make([]DeliveryDTO, 0, len(r.Deliveries)),
	}
	for _, d := range r.Deliveries {
		dto.Deliveries = append(dto.Deliveries, DeliveryDTO{
			Recipient: maskRecipient(d.Recipient),
			Delivered: d.Delivered,
			Error:     d.Error,
		})
	}
	return dto
}

func maskRecipient(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}
