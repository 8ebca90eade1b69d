package fleet

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShipRecord_Expired(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := ShipRecord{ID: "A", LastSeen: base, MaxOffline: 30 * time.Second}

	tests := []struct {
		name    string
		now     time.Time
		expired bool
	}{
		{"截止前", base.Add(29 * time.Second), false},
		{"恰好到达截止时间", base.Add(30 * time.Second), true},
		{"超过截止时间", base.Add(31 * time.Second), true},
		{"超时很久", base.Add(24 * time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, rec.Expired(tt.now))
		})
	}

	assert.Equal(t, base.Add(30*time.Second), rec.Deadline())
}

func TestHeartbeatRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     HeartbeatRequest
		wantErr bool
	}{
		{"合法请求", HeartbeatRequest{Hostname: "h1", MaxOffline: 30, UUID: "A"}, false},
		{"缺少 uuid", HeartbeatRequest{Hostname: "h1", MaxOffline: 30}, true},
		{"空白 hostname", HeartbeatRequest{Hostname: "  ", MaxOffline: 30, UUID: "A"}, true},
		{"max_offline 为零", HeartbeatRequest{Hostname: "h1", UUID: "A"}, true},
		{"max_offline 为负", HeartbeatRequest{Hostname: "h1", MaxOffline: -5, UUID: "A"}, true},
		{"max_offline 恰好为上限", HeartbeatRequest{Hostname: "h1", MaxOffline: MaxMaxOffline, UUID: "A"}, false},
		{"max_offline 超过上限", HeartbeatRequest{Hostname: "h1", MaxOffline: MaxMaxOffline + 1, UUID: "A"}, true},
		{"max_offline 远超上限", HeartbeatRequest{Hostname: "h1", MaxOffline: 10_000_000_000, UUID: "A"}, true},
		{"uuid 与列表路由冲突", HeartbeatRequest{Hostname: "h1", MaxOffline: 30, UUID: "list"}, true},
		{"uuid 与事件路由冲突", HeartbeatRequest{Hostname: "h1", MaxOffline: 30, UUID: "events"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidHeartbeat))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHeartbeatRequest_MaxOfflineDuration(t *testing.T) {
	req := HeartbeatRequest{MaxOffline: 30}
	assert.Equal(t, 30*time.Second, req.MaxOfflineDuration())

	// 上限内换算不会溢出为负数
	req = HeartbeatRequest{MaxOffline: MaxMaxOffline}
	assert.Positive(t, req.MaxOfflineDuration())
}

func TestUpsertResult_String(t *testing.T) {
	assert.Equal(t, "created", Created.String())
	assert.Equal(t, "refreshed", Refreshed.String())
	assert.Equal(t, "unknown", UpsertResult(0).String())
}
