package logging

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureHandler struct {
	level    slog.Level
	messages []string
	err      error
}

func (h *captureHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *captureHandler) Handle(_ context.Context, record slog.Record) error {
	h.messages = append(h.messages, record.Message)
	return h.err
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

func record(level slog.Level, msg string) slog.Record {
	return slog.NewRecord(time.Now(), level, msg, 0)
}

func TestMultiHandlerFansOut(t *testing.T) {
	first := &captureHandler{level: slog.LevelInfo}
	second := &captureHandler{level: slog.LevelInfo}
	m := NewMultiHandler(first, second)

	require.NoError(t, m.Handle(context.Background(), record(slog.LevelInfo, "hello")))
	assert.Equal(t, []string{"hello"}, first.messages)
	assert.Equal(t, []string{"hello"}, second.messages)
}

func TestMultiHandlerSkipsHandlersBelowLevel(t *testing.T) {
	stdout := &captureHandler{level: slog.LevelInfo}
	dbSink := &captureHandler{level: slog.LevelError}
	m := NewMultiHandler(stdout, dbSink)

	assert.True(t, m.Enabled(context.Background(), slog.LevelInfo))
	require.NoError(t, m.Handle(context.Background(), record(slog.LevelInfo, "routine")))
	assert.Equal(t, []string{"routine"}, stdout.messages)
	assert.Empty(t, dbSink.messages)
}

func TestMultiHandlerKeepsDeliveringAfterFailure(t *testing.T) {
	sinkErr := errors.New("sink unavailable")
	failing := &captureHandler{level: slog.LevelInfo, err: sinkErr}
	healthy := &captureHandler{level: slog.LevelInfo}
	m := NewMultiHandler(failing, healthy)

	err := m.Handle(context.Background(), record(slog.LevelError, "boom"))
	require.ErrorIs(t, err, sinkErr)
	assert.Equal(t, []string{"boom"}, healthy.messages)
}
