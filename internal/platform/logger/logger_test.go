package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/params-api/internal/config"
)

func TestSetupReturnsLogger(t *testing.T) {
	logger, err := Setup(config.ServerConfig{LogLevel: "info"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	assert.Same(t, logger, slog.Default())
}

func TestSetupLogLevels(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		enabled  slog.Level
		disabled slog.Level
	}{
		{
			name:     "debug_enables_everything",
			level:    "debug",
			enabled:  slog.LevelDebug,
			disabled: slog.LevelDebug - 1,
		},
		{
			name:     "warn_suppresses_info",
			level:    "warn",
			enabled:  slog.LevelWarn,
			disabled: slog.LevelInfo,
		},
		{
			name:     "error_suppresses_warn",
			level:    "error",
			enabled:  slog.LevelError,
			disabled: slog.LevelWarn,
		},
		{
			name:     "case_insensitive",
			level:    "DEBUG",
			enabled:  slog.LevelDebug,
			disabled: slog.LevelDebug - 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{LogLevel: tc.level})
			require.NoError(t, err)

			assert.True(t, logger.Enabled(context.Background(), tc.enabled))
			assert.False(t, logger.Enabled(context.Background(), tc.disabled))
		})
	}
}

func TestSetupInvalidLevelFallsBackToInfo(t *testing.T) {
	logger, err := Setup(config.ServerConfig{LogLevel: "loud"})
	require.NoError(t, err)

	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
}
