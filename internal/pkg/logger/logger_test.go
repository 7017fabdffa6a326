package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, ErrorLevel, ParseLevel("error"))
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
	assert.Equal(t, InfoLevel, ParseLevel(""))
}

func TestConfigureJSONOutput(t *testing.T) {
	defer Configure(Config{Level: InfoLevel, Pretty: true})

	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})

	Info().Msg("dropped")
	seedLogger := WithComponent("seed")
	seedLogger.Warn().Int("students", 10).Msg("kept")

	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "seed", entry["component"])
	assert.EqualValues(t, 10, entry["students"])
}
