package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZapLogger(t *testing.T) {
	logger, err := NewZapLogger(LoggerConfig{
		ProcessName:   FaucetProcess,
		IsDevelopment: true,
	})
	require.NoError(t, err)
	require.NotNil(t, logger)

	// Should not panic on any level below fatal
	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "key", "value")
	logger.Warn("warn message")
	logger.Error("error message", "err", "boom")
	logger.Infof("formatted %s %d", "message", 1)
}

func TestLoggerWith(t *testing.T) {
	logger, err := NewZapLogger(LoggerConfig{
		ProcessName:   FaucetProcess,
		IsDevelopment: true,
	})
	require.NoError(t, err)

	child := logger.With("request_id", "abc")
	assert.NotNil(t, child)
	child.Info("tagged message")
}
