package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/hay-kot/richedit/internal/core/styles"
)

// Terminal renders buffers for display in a terminal using glamour.
type Terminal struct {
	wordWrap  int
	styleName string
}

// TerminalOption configures a Terminal renderer.
type TerminalOption func(*Terminal)

// WithWordWrap sets the wrap width.
func WithWordWrap(width int) TerminalOption {
	return func(t *Terminal) { t.wordWrap = width }
}

// WithStandardStyle selects a glamour standard style (dark, light, notty, ...)
// instead of the style derived from the active theme.
func WithStandardStyle(name string) TerminalOption {
	return func(t *Terminal) { t.styleName = name }
}

// NewTerminal creates a terminal renderer.
func NewTerminal(opts ...TerminalOption) *Terminal {
	t := &Terminal{wordWrap: 80}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Render implements Renderer.
func (t *Terminal) Render(buf string) (string, error) {
	return t.RenderWidth(buf, t.wordWrap)
}

// RenderWidth renders for a pane width cells wide. The configured wrap is used
// unless the pane is narrower.
func (t *Terminal) RenderWidth(buf string, width int) (string, error) {
	if width <= 0 || width > t.wordWrap {
		width = t.wordWrap
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if t.styleName != "" {
		opts = append(opts, glamour.WithStandardStyle(t.styleName))
	} else {
		style := styles.GlamourStyle()
		noMargin := uint(0)
		style.Document.Margin = &noMargin
		opts = append(opts, glamour.WithStyles(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create terminal renderer: %w", err)
	}

	out, err := r.Render(buf)
	if err != nil {
		return "", fmt.Errorf("render terminal: %w", err)
	}
	return strings.TrimSpace(out), nil
}
