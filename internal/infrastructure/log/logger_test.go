package log

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"invalid", slog.LevelInfo}, // 默认值
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Run("默认配置", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("LOG_FORMAT", "")
		t.Setenv("ENV", "")

		cfg := NewConfigFromEnv()

		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "console", cfg.Format)
		assert.Equal(t, "beaconship-beacon", cfg.Service)
	})

	t.Run("自定义配置", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("LOG_SERVICE", "beaconship-ship")
		t.Setenv("ENV", "")

		cfg := NewConfigFromEnv()

		assert.Equal(t, "debug", cfg.Level)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, "beaconship-ship", cfg.Service)
	})

	t.Run("开发环境覆盖", func(t *testing.T) {
		t.Setenv("ENV", "development")
		t.Setenv("LOG_LEVEL", "error") // 应该被覆盖

		cfg := NewConfigFromEnv()

		assert.Equal(t, "debug", cfg.Level)
		assert.Equal(t, "console", cfg.Format)
		assert.True(t, cfg.AddSource)
	})
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		defaultValue bool
		expected     bool
	}{
		{"true value", "true", false, true},
		{"false value", "false", true, false},
		{"invalid value", "invalid", true, true}, // 默认值
		{"missing env", "", false, false},        // 默认值
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.envValue)
			assert.Equal(t, tt.expected, getEnvBool("TEST_BOOL", tt.defaultValue))
		})
	}
}

func TestInit(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Init(&Config{Level: "debug", Format: "json", Service: "test-service"})

	require.NotNil(t, GetLogger())
	assert.True(t, IsDebugMode())

	NewModuleLogger("fleet", "registry").Info("test message")

	assert.Contains(t, buf.String(), "test message")
	assert.Contains(t, buf.String(), `"service":"test-service"`)
	assert.Contains(t, buf.String(), `"module":"fleet"`)
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithShipID(WithRequestID(context.Background(), "req-1"), "ship-A")
	FromContext(ctx, base).Info("heartbeat")

	assert.Contains(t, buf.String(), "request_id=req-1")
	assert.Contains(t, buf.String(), "ship_id=ship-A")

	// 空上下文返回原 logger
	assert.Same(t, base, FromContext(context.Background(), base))
}
