package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":  zerolog.DebugLevel,
		"INFO":   zerolog.InfoLevel,
		" warn ": zerolog.WarnLevel,
		"error":  zerolog.ErrorLevel,
		"trace":  zerolog.TraceLevel,
		"off":    zerolog.Disabled,
		"chatty": zerolog.InfoLevel,
		"":       zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew_JSONForPlainWriters(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info")

	log.Debug().Msg("hidden")
	log.Info().Str("component", "dogfight").Msg("shown")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["message"])
	assert.Equal(t, "dogfight", line["component"])
	assert.Contains(t, line, "time")
}

func TestNewWithFile_WritesBoth(t *testing.T) {
	var out, file bytes.Buffer
	log := NewWithFile(&out, &file, "debug")

	log.Debug().Msg("tick")
	assert.Contains(t, out.String(), "tick")
	assert.Contains(t, file.String(), "tick")
}
