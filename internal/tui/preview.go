package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/hay-kot/richedit/internal/core/config"
	"github.com/hay-kot/richedit/internal/render"
)

// WidthRenderer renders a buffer for a given pane width.
type WidthRenderer interface {
	RenderWidth(buf string, width int) (string, error)
}

var _ WidthRenderer = (*render.Terminal)(nil)

func newTerminalRenderer(cfg config.PreviewConfig) *render.Terminal {
	opts := []render.TerminalOption{render.WithWordWrap(cfg.WordWrap)}
	if cfg.Style != "" {
		opts = append(opts, render.WithStandardStyle(cfg.Style))
	}
	return render.NewTerminal(opts...)
}

// PreviewPane shows the rendered buffer in a scrollable viewport. Rendering
// happens on Refresh, not on every frame.
type PreviewPane struct {
	viewport viewport.Model
	renderer WidthRenderer
	logger   zerolog.Logger
	width    int
}

// NewPreviewPane creates a preview pane using r.
func NewPreviewPane(r WidthRenderer, logger zerolog.Logger) *PreviewPane {
	return &PreviewPane{
		viewport: viewport.New(80, 20),
		renderer: r,
		logger:   logger,
		width:    80,
	}
}

// SetSize resizes the viewport.
func (p *PreviewPane) SetSize(w, h int) {
	p.width = w
	p.viewport.Width = w
	p.viewport.Height = max(h, 1)
}

// Refresh renders buf into the viewport and scrolls to the top. On render
// failure the raw buffer is shown.
func (p *PreviewPane) Refresh(buf string) {
	out, err := p.renderer.RenderWidth(buf, p.width)
	if err != nil {
		p.logger.Debug().Err(err).Msg("preview render failed, showing raw buffer")
		out = buf
	}
	p.viewport.SetContent(out)
	p.viewport.GotoTop()
}

// Update forwards scroll keys to the viewport.
func (p *PreviewPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// View renders the viewport.
func (p *PreviewPane) View() string {
	return p.viewport.View()
}
