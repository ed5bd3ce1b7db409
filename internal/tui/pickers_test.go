package tui

import (
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/richedit/internal/editor"
	"github.com/hay-kot/richedit/internal/media"
)

func TestPickerForm_LinkResult(t *testing.T) {
	tests := []struct {
		name string
		url  string
		text string
		want editor.PickerResult
	}{
		{"text given", "https://x.io", "site", editor.Chosen("https://x.io", "site")},
		{"text defaults to url", " https://x.io ", "", editor.Chosen("https://x.io", "https://x.io")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewLinkForm()
			p.url, p.text = tt.url, tt.text
			p.Form.State = huh.StateCompleted

			assert.True(t, p.Done())
			assert.Equal(t, tt.want, p.Result())
		})
	}
}

func TestPickerForm_MediaResultUsesLibraryLabel(t *testing.T) {
	lib := media.NewLibrary()
	lib.Add(media.Item{Label: "Logo", URL: "/uploads/logo.png"})

	p := NewMediaForm(lib)
	p.url = "/uploads/logo.png"
	p.Form.State = huh.StateCompleted

	assert.Equal(t, editor.Chosen("/uploads/logo.png", "Logo"), p.Result())
}

func TestPickerForm_MediaWithoutLibrary(t *testing.T) {
	p := NewMediaForm(nil)
	p.url = "https://cdn.example/pic.jpg"
	p.Form.State = huh.StateCompleted

	assert.Equal(t, editor.Chosen("https://cdn.example/pic.jpg", ""), p.Result())
}

func TestPickerForm_AbortedIsCancelled(t *testing.T) {
	p := NewLinkForm()
	p.url = "https://x.io"
	p.Form.State = huh.StateAborted

	assert.True(t, p.Done())
	assert.Equal(t, editor.Cancelled(), p.Result())
}

func TestPickerForm_NotDoneWhileNormal(t *testing.T) {
	p := NewLinkForm()
	assert.False(t, p.Done())
}
