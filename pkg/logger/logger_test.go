package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultIsNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Info("before init", zap.String("k", "v"))
		Sync()
	})
}

func TestNew(t *testing.T) {
	prod, err := New("production")
	require.NoError(t, err)
	assert.False(t, prod.Core().Enabled(zapcore.DebugLevel), "生产环境不输出 Debug")

	dev, err := New("development")
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))
}

func TestHelpersWriteToGlobal(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Set(prev) })

	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))

	Debug("d")
	Info("交易已提交", zap.String("tx", "0xabc"))
	Warn("w")
	Error("e")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "交易已提交", entries[1].Message)
	assert.Equal(t, "0xabc", entries[1].ContextMap()["tx"])
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Same(t, Log, zap.L())
}
