package events

// Handler 事件处理器
type Handler interface {
	// HandleEvent 处理事件，返回的 error 只用于记录日志，不会重试
	HandleEvent(event Event) error
}

// HandlerFunc 函数适配器
type HandlerFunc func(event Event) error

// HandleEvent 实现 Handler 接口
func (f HandlerFunc) HandleEvent(event Event) error {
	return f(event)
}

// Publisher 事件发布方
// 扫描器和应用服务只依赖这个窄接口
type Publisher interface {
	// Publish 异步发布事件，不等待订阅者处理完成
	Publish(event Event)
}

// EventBus 事件总线
type EventBus interface {
	Publisher

	// Subscribe 订阅一种事件，返回取消订阅函数
	Subscribe(eventType EventType, handler Handler) (unsubscribe func())

	// SubscribeMultiple 订阅多种事件，返回取消全部订阅的函数
	SubscribeMultiple(eventTypes []EventType, handler Handler) (unsubscribe func())

	// Close 停止接收新事件，并等待已发布事件处理完成
	Close()
}
