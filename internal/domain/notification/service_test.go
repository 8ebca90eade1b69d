package notification

import (
	"testing"
	"time"

	"github.com/beaconship/backend/internal/domain/fleet"
	"github.com/stretchr/testify/assert"
)

func TestService_Validate(t *testing.T) {
	svc := NewService()

	assert.NoError(t, svc.Validate(&Notification{Title: "t", Message: "m"}))
	assert.ErrorIs(t, svc.Validate(&Notification{Message: "m"}), ErrInvalidTitle)
	assert.ErrorIs(t, svc.Validate(&Notification{Title: "t", Message: " "}), ErrEmptyMessage)
}

func TestService_CalculatePriority(t *testing.T) {
	svc := NewService()

	assert.Equal(t, 1, svc.CalculatePriority(&Notification{Type: TypeError}))
	assert.Equal(t, 0, svc.CalculatePriority(&Notification{Type: TypeWarning}))
	assert.Equal(t, -1, svc.CalculatePriority(&Notification{Type: TypeInfo}))
}

func TestService_Render(t *testing.T) {
	svc := NewService()
	lastSeen := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ship := fleet.ShipRecord{ID: "A", Hostname: "h1", MaxOffline: 30 * time.Second, LastSeen: lastSeen}

	t.Run("沉没通知", func(t *testing.T) {
		title, msg := svc.RenderSunk(ship)

		assert.Equal(t, "Ship has sunk", title)
		assert.Contains(t, msg, "Ship has sunk h1 - last seen 2026-03-01T12:00:00Z")
		assert.Contains(t, msg, "uuid: A")
		assert.Contains(t, msg, "max offline: 30s")
		assert.Contains(t, msg, "deadline: 2026-03-01T12:00:30Z")
	})

	t.Run("注册通知", func(t *testing.T) {
		title, msg := svc.RenderRegistered(ship)

		assert.Equal(t, "Ship registered", title)
		assert.Contains(t, msg, "Ship h1 has registered")
		assert.Contains(t, msg, "uuid: A")
	})
}
