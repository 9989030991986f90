package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_KeyValueArgs(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core))

	logger.Error("insert player failed", "player_id", int64(3), "error", errors.New("disk I/O error"))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "insert player failed", entries[0].Message)
	assert.Equal(t, int64(3), fields["player_id"])
	assert.Equal(t, "disk I/O error", fields["error"])
}

func TestLogger_OddArgsAndNonStringKeys(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core))

	logger.Info("odd", 42, "value", "dangling")

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "value", fields["arg"])
	assert.Contains(t, fields, "dangling")
	assert.Nil(t, fields["dangling"])
}

func TestLogger_ContextCarriesRequestID(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core))

	ctx := WithRequestID(context.Background(), "req-123")
	logger.WarnContext(ctx, "get player failed")
	logger.WarnContext(context.Background(), "no id")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "req-123", entries[0].ContextMap()["request_id"])
	assert.NotContains(t, entries[1].ContextMap(), "request_id")
}

func TestLogger_With(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	parent := FromZap(zap.New(core))
	child := parent.With("component", "players")

	child.ErrorContext(WithRequestID(context.Background(), "req-9"), "delete player failed", "player_id", int64(4))
	parent.Info("plain")

	entries := logs.All()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, "players", fields["component"])
	assert.Equal(t, "req-9", fields["request_id"])
	assert.Equal(t, int64(4), fields["player_id"])
	assert.NotContains(t, entries[1].ContextMap(), "component")

	var nilLogger *Logger
	require.NotNil(t, nilLogger.With("component", "players"))
}

func TestLogger_LevelFiltering(t *testing.T) {
	core, logs := observer.New(LevelWarn)
	logger := FromZap(zap.New(core))

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")

	assert.Equal(t, 1, logs.Len())
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"info":    LevelInfo,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestDefault_NilSafe(t *testing.T) {
	SetDefault(nil)
	require.NotNil(t, Default())

	var nilLogger *Logger
	nilLogger.Info("does not panic")
	assert.NoError(t, nilLogger.Sync())
}
