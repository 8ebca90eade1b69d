package handler

import (
	"errors"
	"fmt"
	"net/http"

	appFleet "github.com/beaconship/backend/internal/application/fleet"
	"github.com/beaconship/backend/internal/domain/fleet"
	"github.com/beaconship/backend/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
)

// ShipHandler 船只 API 处理器
type ShipHandler struct {
	service *appFleet.Service
}

// NewShipHandler 创建船只处理器
func NewShipHandler(service *appFleet.Service) *ShipHandler {
	return &ShipHandler{service: service}
}

// Heartbeat 处理船只心跳
// @Summary 船只心跳
// @Description 首次上报即注册，之后每次上报刷新最后在线时间
// @Tags 船只
// @Accept json
// @Produce json
// @Param request body fleet.HeartbeatRequest true "心跳请求"
// @Success 200 {object} response.Response{data=string}
// @Failure 400 {object} response.ErrorResponse
// @Router /ship [post]
func (h *ShipHandler) Heartbeat(c *gin.Context) {
	var req fleet.HeartbeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, response.CodeInvalidParam, "invalid heartbeat", err.Error())
		return
	}

	if _, err := h.service.Heartbeat(c.Request.Context(), req); err != nil {
		if errors.Is(err, fleet.ErrInvalidHeartbeat) {
			response.ErrorWithDetail(c, http.StatusBadRequest, response.CodeInvalidParam, "invalid heartbeat", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, err.Error())
		return
	}

	response.OK(c)
}

// List 获取所有船只
// @Summary 船只列表
// @Tags 船只
// @Produce json
// @Success 200 {object} response.Response{data=[]appFleet.ShipDTO}
// @Router /ship/list [get]
func (h *ShipHandler) List(c *gin.Context) {
	response.Success(c, h.service.List())
}

// Get 获取单个船只
// @Summary 船只详情
// @Tags 船只
// @Produce json
// @Param uuid path string true "船只 uuid"
// @Success 200 {object} response.Response{data=appFleet.ShipDTO}
// @Failure 404 {object} response.ErrorResponse
// @Router /ship/{uuid} [get]
func (h *ShipHandler) Get(c *gin.Context) {
	id := c.Param("uuid")

	ship, err := h.service.Get(id)
	if err != nil {
		h.fail(c, id, err)
		return
	}

	response.Success(c, ship)
}

// Delete 手动删除船只
// @Summary 删除船只
// @Description 删除后不会发送沉没通知；重复删除返回 404
// @Tags 船只
// @Produce json
// @Param uuid path string true "船只 uuid"
// @Success 200 {object} response.Response{data=string}
// @Failure 404 {object} response.ErrorResponse
// @Router /ship/{uuid} [delete]
func (h *ShipHandler) Delete(c *gin.Context) {
	id := c.Param("uuid")

	if _, err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, id, err)
		return
	}

	response.OK(c)
}

// Stats 舰队概况
// @Summary 舰队概况
// @Tags 船只
// @Produce json
// @Success 200 {object} response.Response{data=appFleet.FleetStats}
// @Router /fleet/stats [get]
func (h *ShipHandler) Stats(c *gin.Context) {
	response.Success(c, h.service.Stats())
}

// Health 健康检查
// @Summary 健康检查
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *ShipHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"ships":  h.service.Count(),
	})
}

func (h *ShipHandler) fail(c *gin.Context, id string, err error) {
	if errors.Is(err, fleet.ErrShipNotFound) {
		response.Error(c, http.StatusNotFound, response.CodeNotFound, fmt.Sprintf("Ship (%s) not found", id))
		return
	}
	response.Error(c, http.StatusInternalServerError, response.CodeInternal, err.Error())
}
