package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/beaconship/backend/internal/domain/events"
	"github.com/beaconship/backend/internal/domain/fleet"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHubServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub()
	hub.Start()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.ServeWS(w, r)
	}))
	t.Cleanup(func() {
		hub.Stop()
		server.Close()
	})
	return hub, server
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_HandleEvent(t *testing.T) {
	hub, server := startHubServer(t)

	first := dial(t, server)
	second := dial(t, server)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, 2*time.Second, 10*time.Millisecond)

	lastSeen := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ship := fleet.ShipRecord{ID: "A", Hostname: "h1", MaxOffline: 30 * time.Second, LastSeen: lastSeen}
	require.NoError(t, hub.HandleEvent(events.NewShipEvent(events.ShipSunk, ship, lastSeen.Add(31*time.Second))))

	for _, conn := range []*websocket.Conn{first, second} {
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var frame map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &frame))
		assert.Equal(t, "ship.sunk", frame["type"])
		shipFrame := frame["ship"].(map[string]interface{})
		assert.Equal(t, "h1", shipFrame["hostname"])
		assert.Equal(t, "A", shipFrame["uuid"])
		assert.Equal(t, float64(30), shipFrame["max_offline"])
	}
}

func TestHub_ClientDisconnect(t *testing.T) {
	hub, server := startHubServer(t)

	conn := dial(t, server)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	_ = conn.Close()
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_Stop(t *testing.T) {
	hub, server := startHubServer(t)

	conn := dial(t, server)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Stop()
	hub.Stop()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "connection is closed after hub stops")

	// 停止后广播不阻塞
	assert.NoError(t, hub.HandleEvent(events.NewShipEvent(events.ShipRemoved, fleet.ShipRecord{ID: "A"}, time.Now())))
}

func TestHub_IgnoresForeignEvents(t *testing.T) {
	hub := NewHub()
	assert.NoError(t, hub.HandleEvent(otherEvent{}))
}

type otherEvent struct{}

func (otherEvent) Type() events.EventType { return "other" }
func (otherEvent) Timestamp() time.Time   { return time.Time{} }
