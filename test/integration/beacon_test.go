//go:build integration
// +build integration

package integration

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beaconship/backend/internal/domain/fleet"
	"github.com/beaconship/backend/test/integration/framework"
)

func startBeacon(t *testing.T, opts ...framework.BeaconOption) (*framework.TestBeacon, *framework.APIClient) {
	t.Helper()
	framework.RequireBinaries(t)

	beacon, err := framework.NewTestBeacon(framework.BeaconBinary, t.Name(), opts...)
	require.NoError(t, err)
	require.NoError(t, beacon.Start())
	t.Cleanup(func() { _ = beacon.Stop() })

	return beacon, framework.NewAPIClient(beacon.BaseURL())
}

// 船只上报后停止心跳，beacon 推送一次沉没通知并移除记录
func TestBeacon_SunkShipIsNotifiedOnce(t *testing.T) {
	pushover := framework.NewPushoverStub()
	defer pushover.Close()

	_, client := startBeacon(t, framework.WithPushover(pushover.URL(), "user-1"))

	resp, status, err := client.Heartbeat(fleet.HeartbeatRequest{Hostname: "h1", MaxOffline: 2, UUID: "A"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", resp.Data)

	ship, status, err := client.GetShip("A")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "h1", ship.Data.Hostname)

	require.Eventually(t, func() bool {
		return len(pushover.Messages()) == 1
	}, 10*time.Second, 100*time.Millisecond)

	msg := pushover.Messages()[0]
	assert.Equal(t, "test-app-token", msg.Token)
	assert.Equal(t, "user-1", msg.User)
	assert.Contains(t, msg.Message, "h1")

	_, status, err = client.GetShip("A")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, status)

	time.Sleep(2 * time.Second)
	assert.Len(t, pushover.Messages(), 1)
}

// ship 进程持续上报时存活，被杀掉后沉没
func TestBeacon_ShipAgent(t *testing.T) {
	pushover := framework.NewPushoverStub()
	defer pushover.Close()

	beacon, client := startBeacon(t, framework.WithPushover(pushover.URL(), "user-1"))

	ship := framework.NewTestShip(framework.ShipBinary, beacon.BaseURL(), "agent-host", "agent-1", 300*time.Millisecond, 2*time.Second)
	require.NoError(t, ship.Start())
	defer ship.Kill()

	require.Eventually(t, func() bool {
		_, status, err := client.GetShip("agent-1")
		return err == nil && status == http.StatusOK
	}, 10*time.Second, 100*time.Millisecond)

	// 多个离线窗口之后依然存活
	time.Sleep(4 * time.Second)
	_, status, err := client.GetShip("agent-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, pushover.Messages())

	require.NoError(t, ship.Kill())

	require.Eventually(t, func() bool {
		return len(pushover.Messages()) == 1
	}, 10*time.Second, 100*time.Millisecond)
	assert.Contains(t, pushover.Messages()[0].Message, "agent-host")
}

// 手动删除不触发通知，重复删除返回 404
func TestBeacon_DeleteIsIdempotent(t *testing.T) {
	pushover := framework.NewPushoverStub()
	defer pushover.Close()

	_, client := startBeacon(t, framework.WithPushover(pushover.URL(), "user-1"))

	_, _, err := client.Heartbeat(fleet.HeartbeatRequest{Hostname: "h1", MaxOffline: 60, UUID: "A"})
	require.NoError(t, err)

	_, status, err := client.DeleteShip("A")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)

	resp, status, err := client.DeleteShip("A")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Ship (A) not found", resp.Message)

	list, err := client.ListShips()
	require.NoError(t, err)
	assert.Empty(t, list.Data)
	assert.Empty(t, pushover.Messages())
}

// 同一地址上第二个 beacon 检测到已有实例后直接退出
func TestBeacon_SingleInstance(t *testing.T) {
	first, _ := startBeacon(t)

	second, err := framework.NewTestBeacon(framework.BeaconBinary, "second", framework.WithPort(first.HTTPPort))
	require.NoError(t, err)

	code, err := second.Run(10 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

// 有接收方但缺少 app token 时启动失败
func TestBeacon_InvalidConfigExits(t *testing.T) {
	framework.RequireBinaries(t)

	beacon, err := framework.NewTestBeacon(framework.BeaconBinary, "invalid",
		framework.WithEnv("USER_TOKENS=user-1", "APP_TOKEN="),
	)
	require.NoError(t, err)

	code, err := beacon.Run(10 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, code)
}
