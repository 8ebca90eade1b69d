package log

import (
	"context"
	"log/slog"
)

type contextKey string

// 上下文键定义
const (
	// RequestContextID HTTP 请求 ID
	RequestContextID contextKey = "request_id"

	// ShipContextID 船只 ID（心跳上报方的 uuid）
	ShipContextID contextKey = "ship_id"
)

// WithRequestID 在上下文中添加请求 ID
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestContextID, requestID)
}

// WithShipID 在上下文中添加船只 ID
func WithShipID(ctx context.Context, shipID string) context.Context {
	return context.WithValue(ctx, ShipContextID, shipID)
}

// LogCtxFromContext 从上下文中提取日志字段
func LogCtxFromContext(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr

	if requestID, ok := ctx.Value(RequestContextID).(string); ok {
		attrs = append(attrs, slog.String("request_id", requestID))
	}
	if shipID, ok := ctx.Value(ShipContextID).(string); ok {
		attrs = append(attrs, slog.String("ship_id", shipID))
	}

	return attrs
}

// FromContext 返回带有上下文字段的 logger
func FromContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	attrs := LogCtxFromContext(ctx)
	if len(attrs) == 0 {
		return logger
	}
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	return logger.With(args...)
}
