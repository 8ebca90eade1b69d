package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/beaconship/backend/internal/infrastructure/log"
)

// RequestIDHeader 请求 ID 头
const RequestIDHeader = "X-Request-ID"

// RequestLogger 为每个请求分配请求 ID 并记录访问日志
// 请求 ID 写入 request context，下游通过 log.FromContext 取用
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), requestID))

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		reqLogger := log.FromContext(c.Request.Context(), logger)
		switch {
		case status >= 500:
			reqLogger.Error("HTTP request", attrs...)
		case status >= 400:
			reqLogger.Warn("HTTP request", attrs...)
		default:
			reqLogger.Debug("HTTP request", attrs...)
		}
	}
}
