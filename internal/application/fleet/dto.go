package fleet

import (
	"time"

	"github.com/beaconship/backend/internal/domain/fleet"
)

// ShipDTO 船只响应
type ShipDTO struct {
	UUID         string    `json:"uuid"`
	Hostname     string    `json:"hostname"`
	MaxOffline   int64     `json:"max_offline"` // 秒
	LastSeen     time.Time `json:"last_seen"`
	RegisteredAt time.Time `json:"registered_at"`
	Deadline     time.Time `json:"deadline"`
}

// FleetStats 舰队概况
type FleetStats struct {
	Ships         int    `json:"ships"`
	SweepInterval string `json:"sweep_interval"`
	Recipients    int    `json:"recipients"`
}

// ToDTO 转换为 DTO
func ToDTO(r fleet.ShipRecord) *ShipDTO {
	return &ShipDTO{
		UUID:         string(r.ID),
		Hostname:     r.Hostname,
		MaxOffline:   int64(r.MaxOffline / time.Second),
		LastSeen:     r.LastSeen,
		RegisteredAt: r.RegisteredAt,
		Deadline:     r.Deadline(),
	}
}
