package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"lanternfish/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
	}
	for name, want := range tests {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewWithWriter_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(config.LoggingConfig{Level: "info", Format: "json"}, false, &buf)
	require.NoError(t, err)

	logger, id := WithRunID(logger)
	For(logger, CategorySimulate).Info("simulated", zap.Int("ticks", 80))
	require.NoError(t, logger.Sync())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "simulated", entry["msg"])
	assert.Equal(t, "simulate", entry["logger"])
	assert.Equal(t, id, entry["run_id"])
	assert.EqualValues(t, 80, entry["ticks"])

	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(config.LoggingConfig{Level: "warn", Format: "console"}, false, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestNewWithWriter_VerboseForcesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(config.LoggingConfig{Level: "error", Format: "console"}, true, &buf)
	require.NoError(t, err)

	logger.Debug("tick detail")
	assert.True(t, strings.Contains(buf.String(), "tick detail"))
}

func TestNewWithWriter_RejectsUnknownFormat(t *testing.T) {
	_, err := NewWithWriter(config.LoggingConfig{Level: "info", Format: "xml"}, false, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestTimerStop(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(config.LoggingConfig{Level: "debug", Format: "json"}, false, &buf)
	require.NoError(t, err)

	elapsed := StartTimer(logger, "simulate").Stop(zap.Int("ticks", 3))
	assert.GreaterOrEqual(t, int64(elapsed), int64(0))
	assert.Contains(t, buf.String(), "simulate completed")
	assert.Contains(t, buf.String(), `"elapsed"`)
}
