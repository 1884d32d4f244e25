package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.in))
		})
	}
}

func TestStructuredLoggerAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "extctl", "v1.2.3", slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("registered", "name", "json")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "registered", rec["msg"])
	assert.Equal(t, "extctl", rec["module"])
	assert.Equal(t, "v1.2.3", rec["version"])
	assert.Equal(t, "json", rec["name"])
	assert.NotContains(t, rec, "source")
}

func TestStructuredLoggerDebugSource(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "extd", "dev", slog.LevelDebug)

	logger.Debug("loading unit")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Contains(t, rec, "source")
}
