package handler

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleHandler_ModulePrefix(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewConsoleHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("module", "fleet", "component", "sweeper")

	logger.Info("ship sunk", "ship_id", "A")

	out := buf.String()
	assert.Contains(t, out, "[fleet/sweeper]")
	assert.Contains(t, out, "ship sunk")
	assert.Contains(t, out, "ship_id=A")
	assert.NotContains(t, out, "module=")
}

func TestConsoleHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewConsoleHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	logger.Info("hidden")
	logger.Warn("shown")

	assert.False(t, strings.Contains(buf.String(), "hidden"))
	assert.True(t, strings.Contains(buf.String(), "shown"))
}

func TestConsoleHandler_Group(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewConsoleHandler(&buf, nil)).WithGroup("push")

	logger.Info("sent", "recipient", "u1")

	assert.Contains(t, buf.String(), "push.recipient=u1")
}
