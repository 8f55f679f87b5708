package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodtrend/internal/logger"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for in, want := range tests {
		assert.Equal(t, want, logger.ParseLevel(in), "level %q", in)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, "info", "json")

	log.Debug("hidden")
	log.Info("trends analyzed", "posts", 15)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trends analyzed", entry["msg"])
	assert.Equal(t, "foodtrend", entry["service"])
	assert.EqualValues(t, 15, entry["posts"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger.New(&buf, "debug", "TEXT").Debug("run completed")

	assert.Contains(t, buf.String(), "msg=\"run completed\"")
	assert.Contains(t, buf.String(), "service=foodtrend")
}
