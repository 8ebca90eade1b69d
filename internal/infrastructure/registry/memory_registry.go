// Package registry 提供船只注册表的内存实现
package registry

import (
	"sync"
	"time"

	"github.com/beaconship/backend/internal/domain/fleet"
)

// Option 注册表选项
type Option func(*MemoryRegistry)

// WithClock 替换时钟（测试用）
func WithClock(now func() time.Time) Option {
	return func(r *MemoryRegistry) {
		r.now = now
	}
}

// MemoryRegistry 内存注册表
// 一把互斥锁保护整个 map，每个操作都是一个短临界区，持锁期间不做任何 I/O
type MemoryRegistry struct {
	mu    sync.Mutex
	ships map[fleet.ShipID]*fleet.ShipRecord
	now   func() time.Time
}

// NewMemoryRegistry 创建空注册表
func NewMemoryRegistry(opts ...Option) *MemoryRegistry {
	r := &MemoryRegistry{
		ships: make(map[fleet.ShipID]*fleet.ShipRecord),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// UpsertHeartbeat 写入心跳
func (r *MemoryRegistry) UpsertHeartbeat(id fleet.ShipID, hostname string, maxOffline time.Duration) (fleet.ShipRecord, fleet.UpsertResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()

	if existing, ok := r.ships[id]; ok {
		// 只推进 LastSeen，MaxOffline 和 Hostname 保持首次注册时的值
		if now.After(existing.LastSeen) {
			existing.LastSeen = now
		}
		return *existing, fleet.Refreshed
	}

	rec := &fleet.ShipRecord{
		ID:           id,
		Hostname:     hostname,
		MaxOffline:   maxOffline,
		LastSeen:     now,
		RegisteredAt: now,
	}
	r.ships[id] = rec
	return *rec, fleet.Created
}

// Get 读取记录快照
func (r *MemoryRegistry) Get(id fleet.ShipID) (fleet.ShipRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.ships[id]
	if !ok {
		return fleet.ShipRecord{}, false
	}
	return *rec, true
}

// List 返回全部记录快照
func (r *MemoryRegistry) List() []fleet.ShipRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]fleet.ShipRecord, 0, len(r.ships))
	for _, rec := range r.ships {
		result = append(result, *rec)
	}
	return result
}

// Remove 删除记录
func (r *MemoryRegistry) Remove(id fleet.ShipID) (fleet.ShipRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.ships[id]
	if !ok {
		return fleet.ShipRecord{}, false
	}
	delete(r.ships, id)
	return *rec, true
}

// SweepExpired 识别并移除所有超时记录
// 识别与删除在同一个临界区内完成，心跳要么先于此刷新记录，要么在之后重新注册
func (r *MemoryRegistry) SweepExpired(now time.Time) []fleet.ShipRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	var expired []fleet.ShipRecord
	for id, rec := range r.ships {
		if rec.Expired(now) {
			expired = append(expired, *rec)
			delete(r.ships, id)
		}
	}
	return expired
}

// Len 当前记录数
func (r *MemoryRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ships)
}

// 编译时检查接口实现
var _ fleet.Registry = (*MemoryRegistry)(nil)
