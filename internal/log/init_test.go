package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Levels(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(InfoLevel, &buf))

	Debug().Msg("hidden")
	Info().Str("op", "add").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "op=add")
}

func TestInit_DefaultIsWarn(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init("", &buf))

	Info().Msg("quiet")
	Warn().Msg("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestInit_UnknownLevel(t *testing.T) {
	assert.EqualError(t, Init("trace", nil), "unknown log level: trace")
}

func TestResolveLevel(t *testing.T) {
	t.Setenv(LevelEnv, "")
	assert.Equal(t, "", ResolveLevel(""))
	assert.Equal(t, InfoLevel, ResolveLevel(InfoLevel))

	t.Setenv(LevelEnv, DebugLevel)
	assert.Equal(t, DebugLevel, ResolveLevel(""))
	assert.Equal(t, ErrorLevel, ResolveLevel(ErrorLevel))
}
