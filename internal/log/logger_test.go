package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		env   string
		want  zerolog.Level
	}{
		{name: "explicit", level: "debug", want: zerolog.DebugLevel},
		{name: "from env", env: "warn", want: zerolog.WarnLevel},
		{name: "explicit wins over env", level: "error", env: "debug", want: zerolog.ErrorLevel},
		{name: "invalid falls through to env", level: "loud", env: "trace", want: zerolog.TraceLevel},
		{name: "default", want: zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.env)
			assert.Equal(t, tt.want, ParseLevel(tt.level))
		})
	}
}

func TestWithComponent(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf})
	t.Cleanup(func() { Configure(Config{}) })

	logger := WithComponent("extract")
	logger.Debug().Int("cues", 3).Msg("done")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "extract", entry["component"])
	assert.Equal(t, "done", entry["message"])
	assert.EqualValues(t, 3, entry["cues"])
}

func TestConfigureLevelFilters(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	Configure(Config{Level: "warn", Output: &buf})
	t.Cleanup(func() { Configure(Config{}) })

	logger := Base()
	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
