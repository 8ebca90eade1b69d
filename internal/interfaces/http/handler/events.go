package handler

import (
	"log/slog"

	"github.com/beaconship/backend/internal/infrastructure/log"
	"github.com/beaconship/backend/internal/infrastructure/websocket"
	"github.com/gin-gonic/gin"
)

// EventsHandler 舰队事件流处理器
type EventsHandler struct {
	hub    *websocket.Hub
	logger *slog.Logger
}

// NewEventsHandler 创建事件流处理器
func NewEventsHandler(hub *websocket.Hub) *EventsHandler {
	return &EventsHandler{
		hub:    hub,
		logger: log.NewModuleLogger("http", "events"),
	}
}

// Stream 订阅舰队事件
// @Summary 舰队事件流
// @Description WebSocket，每个事件一帧 {"type","ship","time"}
// @Tags 船只
// @Router /ship/events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	if err := h.hub.ServeWS(c.Writer, c.Request); err != nil {
		// 升级失败时 upgrader 已经写回了错误响应
		log.FromContext(c.Request.Context(), h.logger).Warn("Failed to open event stream",
			"error", err,
		)
	}
}
