package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewModeController_Toggle(t *testing.T) {
	var v ViewModeController
	assert.Equal(t, ModeEdit, v.Mode())
	assert.Equal(t, ModePreview, v.Toggle())
	assert.Equal(t, ModeEdit, v.Toggle())

	v.Set(ModePreview)
	assert.Equal(t, ModePreview, v.Mode())
	assert.Equal(t, "preview", v.Mode().String())
}
