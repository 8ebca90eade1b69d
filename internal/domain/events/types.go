// Package events 定义舰队领域事件
// 注册表状态变化（注册、沉没、删除）通过事件总线通知订阅者
package events

import "time"

// EventType 事件类型标识
type EventType string

// 船只相关事件类型
const (
	// ShipRegistered 新船只首次上报心跳
	ShipRegistered EventType = "ship.registered"
	// ShipSunk 船只超时被扫描器移除
	ShipSunk EventType = "ship.sunk"
	// ShipRemoved 船只被管理员手动删除
	ShipRemoved EventType = "ship.removed"
)

// AllShipEvents 全部船只事件类型
var AllShipEvents = []EventType{ShipRegistered, ShipSunk, ShipRemoved}

// Event 领域事件接口
type Event interface {
	// Type 返回事件类型
	Type() EventType
	// Timestamp 返回事件发生时间
	Timestamp() time.Time
}
