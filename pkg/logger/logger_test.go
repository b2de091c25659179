package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONEnProduccion(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "debug", Out: &buf})

	l.Component("delivery").Info().Str("delivery_id", "d1").Msg("entrega marcada")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "delivery", line["component"])
	assert.Equal(t, "d1", line["delivery_id"])
	assert.Equal(t, "entrega marcada", line["message"])
}

func TestNew_RespetaNivel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "warn", Out: &buf})

	l.Info().Msg("no debe salir")
	assert.Empty(t, buf.String())

	l.Warn().Msg("sí")
	assert.Contains(t, buf.String(), "sí")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.TraceLevel, parseLevel("trace"))
}
