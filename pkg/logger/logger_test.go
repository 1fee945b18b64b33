package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithContext_AddsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := FromCore(core)

	ctx := context.WithValue(context.Background(), RequestIdKey, "req-42")
	l.WithContext(ctx).Infof("user %s created", "u1")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "user u1 created", entries[0].Message)
	assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
}

func TestWithContext_NoRequestID(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	l := FromCore(core)

	assert.Same(t, l, l.WithContext(context.Background()))
	assert.Same(t, l, l.WithContext(context.WithValue(context.Background(), RequestIdKey, "")))
}

func TestLevels(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	l := FromCore(core)

	l.Infof("dropped")
	l.Warnf("kept %d", 1)
	l.Errorf("kept %d", 2)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestGlobalLogger(t *testing.T) {
	prev := GetGlobalLogger()
	t.Cleanup(func() { SetGlobalLogger(prev) })

	l := NewNop()
	SetGlobalLogger(l)
	assert.Same(t, l, GetGlobalLogger())
}
