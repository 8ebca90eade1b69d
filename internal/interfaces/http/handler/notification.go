package handler

import (
	"net/http"
	"strconv"

	"github.com/beaconship/backend/internal/application/notification"
	"github.com/beaconship/backend/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

// NotificationHandler 通知处理器
type NotificationHandler struct {
	dispatcher *notification.Dispatcher
}

// NewNotificationHandler 创建通知处理器
func NewNotificationHandler(dispatcher *notification.Dispatcher) *NotificationHandler {
	return &NotificationHandler{dispatcher: dispatcher}
}

// Recent 近期通知及投递结果
// @Summary 近期通知
// @Tags 通知
// @Produce json
// @Param limit query int false "条数（默认 20，最大 100）"
// @Success 200 {object} response.Response{data=[]notification.NotificationDTO}
// @Failure 400 {object} response.ErrorResponse
// @Router /notifications/recent [get]
func (h *NotificationHandler) Recent(c *gin.Context) {
	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.Error(c, http.StatusBadRequest, response.CodeInvalidParam, "limit must be a positive integer")
			return
		}
		limit = n
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	records, err := h.dispatcher.Recent(limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, err.Error())
		return
	}

	response.Success(c, records)
}
