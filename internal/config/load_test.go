package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PARAMS_SERVER_PORT", "9090")
	t.Setenv("PARAMS_SERVER_LOG_LEVEL", "debug")
	t.Setenv("PARAMS_SERVER_SHUTDOWN_TIMEOUT", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 30, cfg.Server.ShutdownTimeout)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{
			name:  "port_out_of_range",
			key:   "PARAMS_SERVER_PORT",
			value: "70000",
		},
		{
			name:  "unknown_log_level",
			key:   "PARAMS_SERVER_LOG_LEVEL",
			value: "verbose",
		},
		{
			name:  "negative_shutdown_timeout",
			key:   "PARAMS_SERVER_SHUTDOWN_TIMEOUT",
			value: "-1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
