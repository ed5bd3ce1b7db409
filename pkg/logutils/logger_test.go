package logutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "richedit.log")

	l, closer, err := New("info", file)
	require.NoError(t, err)

	l.Debug().Msg("hidden")
	l.Info().Str("command", "bold").Msg("applied")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `"command":"bold"`)
	assert.Contains(t, out, `"message":"applied"`)
	assert.NotContains(t, out, "hidden", "below configured level")
}

func TestNew_AppendsAcrossRuns(t *testing.T) {
	file := filepath.Join(t.TempDir(), "richedit.log")

	for _, msg := range []string{"first", "second"} {
		l, closer, err := New("debug", file)
		require.NoError(t, err)
		l.Info().Msg(msg)
		closer()
	}

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, closer, err := New("loud", "")
	require.Error(t, err)
	assert.NotNil(t, closer)
}
