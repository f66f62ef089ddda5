package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/slot-appointment-service/internal/core/ports/out"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return newZapLogger(zap.New(core)), logs
}

func TestZapLogger_ModuleAndFields(t *testing.T) {
	base, logs := newObservedLogger()

	logger := base.WithModule("AvailabilityAdapter").WithFields(out.LogFields{
		"requestId": "abc",
		"weekKey":   "20240708",
	})
	logger.Warn("availability.weekly.fetch_failed", out.LogFields{
		"weekKey": "20240715",
		"status":  502,
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "availability.weekly.fetch_failed", entry.Message)
	assert.Equal(t, zap.WarnLevel, entry.Level)

	fields := entry.ContextMap()
	assert.Equal(t, "AvailabilityAdapter", fields["module"])
	assert.Equal(t, "abc", fields["requestId"])
	assert.Equal(t, "20240715", fields["weekKey"])
	assert.EqualValues(t, 502, fields["status"])
}

func TestZapLogger_WithFieldsDoesNotLeak(t *testing.T) {
	base, logs := newObservedLogger()

	_ = base.WithFields(out.LogFields{"scoped": true})
	base.Info("app.starting", out.LogFields{})

	require.Equal(t, 1, logs.Len())
	_, exists := logs.All()[0].ContextMap()["scoped"]
	assert.False(t, exists)
	assert.Equal(t, "unknown", logs.All()[0].ContextMap()["module"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zap.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zap.WarnLevel, parseLevel(" WARN "))
	assert.Equal(t, zap.InfoLevel, parseLevel("verbose"))
}
