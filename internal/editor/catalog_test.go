package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_Lookup(t *testing.T) {
	c := DefaultCatalog()

	spec, err := c.Lookup(CmdBold)
	require.NoError(t, err)
	assert.Equal(t, "<strong>", spec.Prefix)
	assert.Equal(t, "</strong>", spec.Suffix)
	assert.Equal(t, "texto em negrito", spec.Placeholder)

	spec, err = c.Lookup(CmdItalic)
	require.NoError(t, err)
	assert.Equal(t, "texto em itálico", spec.Placeholder)
}

func TestDefaultCatalog_UnknownCommand(t *testing.T) {
	c := DefaultCatalog()

	_, err := c.Lookup("strikethrough")
	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "strikethrough")

	assert.Panics(t, func() { c.MustLookup("strikethrough") })
	assert.False(t, c.Has("strikethrough"))
}

func TestDefaultCatalog_Entries(t *testing.T) {
	c := DefaultCatalog()

	for _, cmd := range c.Commands() {
		t.Run(string(cmd.ID), func(t *testing.T) {
			assert.NotEmpty(t, cmd.Label)

			switch cmd.ID {
			case CmdLink:
				assert.Equal(t, PickerLink, cmd.Spec.Picker)
			case CmdImage:
				assert.Equal(t, PickerMedia, cmd.Spec.Picker)
			default:
				assert.Equal(t, PickerNone, cmd.Spec.Picker)
				assert.NotEmpty(t, cmd.Spec.Prefix)
				assert.NotEmpty(t, cmd.Spec.Suffix)
				assert.NotEmpty(t, cmd.Spec.Placeholder)
			}

			if !cmd.Spec.Multiline {
				assert.NotContains(t, cmd.Spec.Prefix+cmd.Spec.Placeholder+cmd.Spec.Suffix, "\n")
			}
		})
	}
}

func TestDefaultCatalog_TableSkeleton(t *testing.T) {
	spec := DefaultCatalog().MustLookup(CmdTable)
	edit := Apply("", Caret(0), spec)

	assert.True(t, strings.HasPrefix(edit.Buffer, "<table>"))
	assert.True(t, strings.HasSuffix(edit.Buffer, "</table>"))
	assert.Contains(t, edit.Buffer, "<th>Coluna 1</th>")
	assert.Equal(t, Caret(len(edit.Buffer)), edit.Selection)
}

func TestDefaultCatalog_IDsOrder(t *testing.T) {
	ids := DefaultCatalog().IDs()
	require.NotEmpty(t, ids)
	assert.Equal(t, CmdBold, ids[0])
	assert.Equal(t, CmdImage, ids[len(ids)-1])
}

func TestNewCatalog_DuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewCatalog(
			Command{ID: "x", Label: "x"},
			Command{ID: "x", Label: "y"},
		)
	})
}

func TestCatalog_Label(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t, "B", c.Label(CmdBold))
	assert.Equal(t, "nope", c.Label("nope"))
}
