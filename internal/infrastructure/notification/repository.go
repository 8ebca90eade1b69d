package notification

import (
	"sync"

	"github.com/beaconship/backend/internal/domain/notification"
	"github.com/beaconship/backend/internal/infrastructure/config"
)

// MemoryRepository 内存仓储实现
// 只保留最近 capacity 条记录，超出后丢弃最旧的
type MemoryRepository struct {
	mu       sync.RWMutex
	items    []*notification.Record
	capacity int
}

// NewMemoryRepository 创建内存仓储
func NewMemoryRepository(cfg *config.NotificationConfig) *MemoryRepository {
	capacity := cfg.HistorySize
	if capacity <= 0 {
		capacity = 100
	}
	return &MemoryRepository{
		items:    make([]*notification.Record, 0, capacity),
		capacity: capacity,
	}
}

// Save 保存通知及投递结果
func (r *MemoryRepository) Save(n *notification.Notification, deliveries []notification.Delivery) error {
	record := &notification.Record{
		Notification: n,
		Deliveries:   append([]notification.Delivery(nil), deliveries...),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.items) >= r.capacity {
		copy(r.items, r.items[1:])
		r.items = r.items[:len(r.items)-1]
	}
	r.items = append(r.items, record)
	return nil
}

// Recent 返回最近的记录，新的在前
func (r *MemoryRepository) Recent(limit int) ([]*notification.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.items) {
		limit = len(r.items)
	}

	result := make([]*notification.Record, 0, limit)
	for i := len(r.items) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, r.items[i])
	}
	return result, nil
}

// 编译时检查接口实现
var _ notification.Repository = (*MemoryRepository)(nil)
