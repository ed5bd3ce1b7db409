package validate

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"absolute", "https://example.com/a?b=c", nil},
		{"relative", "/uploads/logo.png", nil},
		{"surrounding space trimmed", "  https://x.io  ", nil},
		{"empty", "", ErrURLRequired},
		{"blank", "   ", ErrURLRequired},
		{"inner space", "https://x.io/a b", ErrURLChars},
		{"quote", `https://x.io/"`, ErrURLChars},
		{"angle bracket", "https://x.io/<", ErrURLChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := URL(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestURL_Unparsable(t *testing.T) {
	assert.ErrorContains(t, URL("http://[::1"), "invalid url")
}

func TestURLField(t *testing.T) {
	err := URLField("media.items[0].url", "")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "media.items[0].url", fieldErrs[0].Field)
	assert.ErrorIs(t, fieldErrs[0].Err, ErrURLRequired)

	assert.NoError(t, URLField("url", "https://x.io"))
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"ctrl chord", "ctrl+k", false},
		{"alt chord", "alt+b", false},
		{"plain key", "f2", false},
		{"plus key", "+", false},
		{"empty", "", true},
		{"blank", "  ", true},
		{"space inside", "ctrl+ k", true},
		{"dangling modifier", "ctrl+", true},
		{"leading plus", "+k", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := KeyName(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "KeyName(%q) error = %v", tt.input, err)
		})
	}
}
