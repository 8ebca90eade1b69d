package main

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beaconship/backend/internal/infrastructure/config"
)

func TestParseFlags(t *testing.T) {
	t.Run("全部参数", func(t *testing.T) {
		opts, err := parseFlags([]string{
			"-listen", "0.0.0.0:9000",
			"-app-token", "app",
			"-user-token", "u1",
			"-user-token", "u2,u3",
			"-interval", "2s",
			"-mdns",
		}, io.Discard)
		require.NoError(t, err)

		cfg := config.NewConfig()
		opts.apply(cfg)

		assert.Equal(t, "0.0.0.0:9000", cfg.Server.ListenAddr)
		assert.Equal(t, "app", cfg.Notification.AppToken)
		assert.Equal(t, []string{"u1", "u2", "u3"}, cfg.Notification.UserTokens)
		assert.Equal(t, 2*time.Second, cfg.Sweeper.Interval)
		assert.True(t, cfg.Discovery.Enabled)
	})

	t.Run("未指定的参数不覆盖配置", func(t *testing.T) {
		opts, err := parseFlags(nil, io.Discard)
		require.NoError(t, err)

		cfg := config.NewConfig()
		cfg.Notification.AppToken = "from-env"
		cfg.Notification.UserTokens = []string{"env-user"}
		opts.apply(cfg)

		assert.Equal(t, ":8000", cfg.Server.ListenAddr)
		assert.Equal(t, "from-env", cfg.Notification.AppToken)
		assert.Equal(t, []string{"env-user"}, cfg.Notification.UserTokens)
		assert.Equal(t, 5*time.Second, cfg.Sweeper.Interval)
	})

	t.Run("未知参数", func(t *testing.T) {
		_, err := parseFlags([]string{"-unknown"}, io.Discard)
		assert.Error(t, err)
	})

	t.Run("多余的位置参数", func(t *testing.T) {
		_, err := parseFlags([]string{"extra"}, io.Discard)
		assert.Error(t, err)
	})
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv(config.EnvConfigFile, "")
	t.Setenv(config.EnvAppToken, "")
	t.Setenv(config.EnvUserTokens, "")

	// 有接收方但没有 app token
	assert.Equal(t, 1, run([]string{"-listen", "127.0.0.1:0", "-user-token", "u1"}))
	// 监听地址无法解析
	assert.Equal(t, 1, run([]string{"-listen", "nonsense"}))
}
