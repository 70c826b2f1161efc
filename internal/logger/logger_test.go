package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "trace", want: zerolog.TraceLevel},
		{level: "DEBUG", want: zerolog.DebugLevel},
		{level: "info", want: zerolog.InfoLevel},
		{level: "warning", want: zerolog.WarnLevel},
		{level: "error", want: zerolog.ErrorLevel},
		{level: "off", want: zerolog.Disabled},
		{level: "", want: zerolog.InfoLevel},
		{level: "verbose", want: zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := ParseLevel(tt.level); got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Format: "json", Out: &buf})
	defer l.Close()

	l.WithComponent("scan").Info().Str("path", "/data").Msg("scanned")
	l.Debug().Msg("hidden")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "scan", line["component"])
	assert.Equal(t, "/data", line["path"])
	assert.Equal(t, "scanned", line["message"])
	assert.Contains(t, line, "time")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_File(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Format: "json", Path: dir, Out: &buf})

	l.Debug().Msg("to both")
	require.NoError(t, l.Close())

	content, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(content), "to both")
	assert.Contains(t, buf.String(), "to both")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Out: &buf})
	l.Warn().Msg("careful")
	assert.Contains(t, buf.String(), "careful")
	assert.NoError(t, l.Close())
}
