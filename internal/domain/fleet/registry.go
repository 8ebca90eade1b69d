package fleet

import "time"

// Registry 船只注册表接口
// 所有读写都在实现内部的同一个临界区内完成，调用方无法绕过
// 实现不得在持锁期间执行任何网络 I/O
type Registry interface {
	// UpsertHeartbeat 写入心跳
	// 不存在时创建记录并返回 Created；存在时仅推进 LastSeen 并返回 Refreshed
	UpsertHeartbeat(id ShipID, hostname string, maxOffline time.Duration) (ShipRecord, UpsertResult)

	// Get 读取单条记录快照
	Get(id ShipID) (ShipRecord, bool)

	// List 返回所有记录快照，顺序不固定
	List() []ShipRecord

	// Remove 无条件删除，返回被删除的记录
	Remove(id ShipID) (ShipRecord, bool)

	// SweepExpired 在一个临界区内找出所有 now >= LastSeen + MaxOffline 的记录，
	// 删除并返回它们的快照
	SweepExpired(now time.Time) []ShipRecord

	// Len 当前记录数
	Len() int
}
