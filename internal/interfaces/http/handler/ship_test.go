package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appFleet "github.com/beaconship/backend/internal/application/fleet"
	"github.com/beaconship/backend/internal/infrastructure/config"
	"github.com/beaconship/backend/internal/infrastructure/eventbus"
	"github.com/beaconship/backend/internal/infrastructure/registry"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShipRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	bus := eventbus.NewEventBus()
	t.Cleanup(bus.Close)

	service := appFleet.NewService(
		registry.NewMemoryRegistry(),
		bus,
		&config.SweeperConfig{Interval: 5 * time.Second},
		&config.NotificationConfig{UserTokens: []string{"u1"}},
	)
	h := NewShipHandler(service)

	router := gin.New()
	router.POST("/ship", h.Heartbeat)
	router.GET("/ship/list", h.List)
	router.GET("/ship/:uuid", h.Get)
	router.DELETE("/ship/:uuid", h.Delete)
	router.GET("/fleet/stats", h.Stats)
	router.GET("/health", h.Health)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "响应应该是有效的 JSON: %s", w.Body.String())
	return w.Code, resp
}

func TestShipHandler_Heartbeat(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{"正常心跳", `{"hostname":"h1","max_offline":30,"uuid":"A"}`, http.StatusOK},
		{"JSON 格式错误", `{"hostname":`, http.StatusBadRequest},
		{"缺少 uuid", `{"hostname":"h1","max_offline":30}`, http.StatusBadRequest},
		{"缺少 max_offline", `{"hostname":"h1","uuid":"A"}`, http.StatusBadRequest},
		{"max_offline 为负数", `{"hostname":"h1","max_offline":-5,"uuid":"A"}`, http.StatusBadRequest},
		{"max_offline 类型错误", `{"hostname":"h1","max_offline":"30","uuid":"A"}`, http.StatusBadRequest},
		{"主机名为空白", `{"hostname":"  ","max_offline":30,"uuid":"A"}`, http.StatusBadRequest},
		{"max_offline 溢出", `{"hostname":"h1","max_offline":10000000000,"uuid":"A"}`, http.StatusBadRequest},
		{"uuid 为保留字", `{"hostname":"h1","max_offline":30,"uuid":"list"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newShipRouter(t)

			status, body := doRequest(t, router, http.MethodPost, "/ship", tt.body)

			assert.Equal(t, tt.expectedStatus, status)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, float64(0), body["code"])
				assert.Equal(t, "ok", body["data"])
			} else {
				assert.NotEqual(t, float64(0), body["code"])
				// 非法请求不会写入注册表
				_, list := doRequest(t, router, http.MethodGet, "/ship/list", "")
				assert.Empty(t, list["data"])
			}
		})
	}
}

func TestShipHandler_Lifecycle(t *testing.T) {
	router := newShipRouter(t)

	status, _ := doRequest(t, router, http.MethodPost, "/ship", `{"hostname":"h1","max_offline":30,"uuid":"A"}`)
	require.Equal(t, http.StatusOK, status)

	t.Run("重复心跳依然返回 ok", func(t *testing.T) {
		status, body := doRequest(t, router, http.MethodPost, "/ship", `{"hostname":"h1","max_offline":30,"uuid":"A"}`)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "ok", body["data"])
	})

	t.Run("查询船只", func(t *testing.T) {
		status, body := doRequest(t, router, http.MethodGet, "/ship/A", "")
		require.Equal(t, http.StatusOK, status)

		ship := body["data"].(map[string]interface{})
		assert.Equal(t, "A", ship["uuid"])
		assert.Equal(t, "h1", ship["hostname"])
		assert.Equal(t, float64(30), ship["max_offline"])
		assert.NotEmpty(t, ship["last_seen"])
	})

	t.Run("列表", func(t *testing.T) {
		status, body := doRequest(t, router, http.MethodGet, "/ship/list", "")
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, body["data"], 1)
	})

	t.Run("健康检查", func(t *testing.T) {
		status, body := doRequest(t, router, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, float64(1), body["ships"])
	})

	t.Run("概况", func(t *testing.T) {
		_, body := doRequest(t, router, http.MethodGet, "/fleet/stats", "")
		stats := body["data"].(map[string]interface{})
		assert.Equal(t, float64(1), stats["ships"])
		assert.Equal(t, "5s", stats["sweep_interval"])
		assert.Equal(t, float64(1), stats["recipients"])
	})

	t.Run("删除后再次删除返回 404", func(t *testing.T) {
		status, body := doRequest(t, router, http.MethodDelete, "/ship/A", "")
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "ok", body["data"])

		status, body = doRequest(t, router, http.MethodDelete, "/ship/A", "")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Ship (A) not found", body["message"])
	})

	t.Run("查询不存在的船只", func(t *testing.T) {
		status, body := doRequest(t, router, http.MethodGet, "/ship/A", "")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Ship (A) not found", body["message"])
	})
}
