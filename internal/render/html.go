package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// HTML renders buffers to an HTML fragment. Inline and block HTML pass
// through unescaped.
type HTML struct {
	md goldmark.Markdown
}

// NewHTML creates an HTML renderer.
func NewHTML() *HTML {
	return &HTML{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
				html.WithHardWraps(),
			),
		),
	}
}

// Render implements Renderer.
func (h *HTML) Render(buf string) (string, error) {
	var out bytes.Buffer
	if err := h.md.Convert([]byte(buf), &out); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return out.String(), nil
}
