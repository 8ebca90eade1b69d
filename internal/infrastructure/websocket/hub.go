package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	appFleet "github.com/beaconship/backend/internal/application/fleet"
	"github.com/beaconship/backend/internal/domain/events"
	"github.com/beaconship/backend/internal/infrastructure/log"
)

// Frame 推送给订阅方的事件帧
type Frame struct {
	Type string            `json:"type"`
	Ship *appFleet.ShipDTO `json:"ship"`
	Time time.Time         `json:"time"`
}

// Hub WebSocket 连接管理中心
// 所有连接共享同一个舰队事件流
type Hub struct {
	clients map[*Client]bool
	// 注册连接
	register chan *Client
	// 注销连接
	unregister chan *Client
	// 广播消息
	broadcast chan []byte

	done      chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
	wg        sync.WaitGroup
	mu        sync.RWMutex
	logger    *slog.Logger
}

// NewHub 创建 Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
		logger:     log.NewModuleLogger("websocket", "hub"),
	}
}

// Run 运行 Hub（需要在 goroutine 中运行）
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Debug("Event stream client connected", "remote", client.remote)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Debug("Event stream client disconnected", "remote", client.remote)

		case data := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					// 消费过慢的连接直接断开
					h.logger.Warn("Event stream client too slow, dropping", "remote", client.remote)
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Start 启动 Hub（启动后台 goroutine），重复调用无效
func (h *Hub) Start() {
	h.startOnce.Do(func() {
		h.wg.Add(1)
		go func() {
			defer h.wg.Done()
			h.Run()
		}()
	})
}

// Stop 停止 Hub 并关闭所有连接的发送队列
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
	})
	h.wg.Wait()
}

// Register 注册连接，Hub 已停止时返回 false
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister 注销连接
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Broadcast 向所有连接广播
func (h *Hub) Broadcast(data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	select {
	case h.broadcast <- jsonData:
	case <-h.done:
	}
	return nil
}

// ClientCount 当前连接数
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// HandleEvent 实现 events.Handler，把舰队事件转发给所有连接
func (h *Hub) HandleEvent(event events.Event) error {
	shipEvent, ok := event.(*events.ShipEvent)
	if !ok {
		return nil
	}
	return h.Broadcast(&Frame{
		Type: string(shipEvent.Type()),
		Ship: appFleet.ToDTO(shipEvent.Ship),
		Time: shipEvent.Timestamp(),
	})
}

// 编译时检查接口实现
var _ events.Handler = (*Hub)(nil)
