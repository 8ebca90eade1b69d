//go:build integration
// +build integration

// PushoverStub 模拟 Pushover 消息接口
package framework

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// PushMessage 收到的推送
type PushMessage struct {
	Token   string `json:"token"`
	User    string `json:"user"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// PushoverStub Pushover 接口桩
type PushoverStub struct {
	server   *httptest.Server
	mu       sync.Mutex
	messages []PushMessage
}

// NewPushoverStub 启动 Pushover 接口桩
func NewPushoverStub() *PushoverStub {
	s := &PushoverStub{}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg PushMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		s.messages = append(s.messages, msg)
		s.mu.Unlock()
		_, _ = w.Write([]byte(`{"status":1}`))
	}))
	return s
}

// URL 接口地址
func (s *PushoverStub) URL() string {
	return s.server.URL
}

// Messages 已收到的推送
func (s *PushoverStub) Messages() []PushMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]PushMessage(nil), s.messages...)
}

// Close 关闭接口桩
func (s *PushoverStub) Close() {
	s.server.Close()
}
