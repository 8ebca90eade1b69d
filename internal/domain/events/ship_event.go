package events

import (
	"time"

	"github.com/beaconship/backend/internal/domain/fleet"
)

// ShipEvent 船只状态变化事件
// Ship 是事件发生时刻记录的值快照，与注册表中的活动记录没有共享
type ShipEvent struct {
	EventType EventType
	Ship      fleet.ShipRecord
	EventTime time.Time
}

// NewShipEvent 创建船只事件
func NewShipEvent(eventType EventType, ship fleet.ShipRecord, at time.Time) *ShipEvent {
	return &ShipEvent{
		EventType: eventType,
		Ship:      ship,
		EventTime: at,
	}
}

// Type 实现 Event 接口
func (e *ShipEvent) Type() EventType {
	return e.EventType
}

// Timestamp 实现 Event 接口
func (e *ShipEvent) Timestamp() time.Time {
	return e.EventTime
}
