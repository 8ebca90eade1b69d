//go:build integration
// +build integration

// APIClient 基于 resty 封装的 HTTP 客户端，直接复用业务结构体
package framework

import (
	"fmt"
	"time"

	appFleet "github.com/beaconship/backend/internal/application/fleet"
	"github.com/beaconship/backend/internal/domain/fleet"
	"github.com/go-resty/resty/v2"
)

// APIClient 测试用 HTTP 客户端
type APIClient struct {
	client *resty.Client
}

// NewAPIClient 创建测试用 HTTP 客户端
func NewAPIClient(baseURL string) *APIClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetHeader("Content-Type", "application/json")

	return &APIClient{client: client}
}

// APIResponse 通用 API 响应（复用 response.Response 的 JSON 结构）
type APIResponse[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// HealthData GET /health 响应
type HealthData struct {
	Status string `json:"status"`
	Ships  int    `json:"ships"`
}

// do 执行请求并统一处理成功/错误响应的 JSON 解析
// resty 的 SetResult 仅在 2xx 时解析，SetError 在 4xx/5xx 时解析
// 由于两者的 code/message 字段一致，用同类型接收即可
func do[T any](r *resty.Request, result *APIResponse[T]) *resty.Request {
	return r.SetResult(result).SetError(result)
}

// Health 健康检查
func (c *APIClient) Health() (*HealthData, error) {
	var result HealthData
	resp, err := c.client.R().SetResult(&result).Get("/health")
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("health check failed: status %d", resp.StatusCode())
	}
	return &result, nil
}

// Heartbeat 上报心跳
func (c *APIClient) Heartbeat(req fleet.HeartbeatRequest) (*APIResponse[string], int, error) {
	var result APIResponse[string]
	resp, err := do(c.client.R().SetBody(req), &result).Post("/ship")
	if err != nil {
		return nil, 0, err
	}
	return &result, resp.StatusCode(), nil
}

// GetShip 查询船只
func (c *APIClient) GetShip(id string) (*APIResponse[*appFleet.ShipDTO], int, error) {
	var result APIResponse[*appFleet.ShipDTO]
	resp, err := do(c.client.R(), &result).Get("/ship/" + id)
	if err != nil {
		return nil, 0, err
	}
	return &result, resp.StatusCode(), nil
}

// ListShips 船只列表
func (c *APIClient) ListShips() (*APIResponse[[]*appFleet.ShipDTO], error) {
	var result APIResponse[[]*appFleet.ShipDTO]
	_, err := do(c.client.R(), &result).Get("/ship/list")
	return &result, err
}

// DeleteShip 删除船只
func (c *APIClient) DeleteShip(id string) (*APIResponse[string], int, error) {
	var result APIResponse[string]
	resp, err := do(c.client.R(), &result).Delete("/ship/" + id)
	if err != nil {
		return nil, 0, err
	}
	return &result, resp.StatusCode(), nil
}
