package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("LANTERNFISH_TICKS sets tick count", func(t *testing.T) {
		t.Setenv("LANTERNFISH_TICKS", "80")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())

		assert.Equal(t, 80, cfg.Simulation.Ticks)
	})

	t.Run("invalid LANTERNFISH_TICKS is an error", func(t *testing.T) {
		t.Setenv("LANTERNFISH_TICKS", "eighty")

		cfg := DefaultConfig()
		err := cfg.applyEnvOverrides()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "LANTERNFISH_TICKS")
	})

	t.Run("empty values leave config alone", func(t *testing.T) {
		t.Setenv("LANTERNFISH_TICKS", "")
		t.Setenv("LANTERNFISH_LOG_LEVEL", "")
		t.Setenv("LANTERNFISH_TRACE_FORMAT", "")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())

		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("log level and trace format", func(t *testing.T) {
		t.Setenv("LANTERNFISH_LOG_LEVEL", "debug")
		t.Setenv("LANTERNFISH_TRACE_FORMAT", "markdown")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())

		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "markdown", cfg.Trace.Format)
	})
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("LANTERNFISH_TICKS", "18")

	path := t.TempDir() + "/lanternfish.yaml"
	cfg := DefaultConfig()
	cfg.Simulation.Ticks = 80
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 18, loaded.Simulation.Ticks)
}
