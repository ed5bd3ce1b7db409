package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"

	"github.com/hay-kot/richedit/internal/core/styles"
	"github.com/hay-kot/richedit/internal/core/validate"
	"github.com/hay-kot/richedit/internal/editor"
	"github.com/hay-kot/richedit/internal/media"
)

const pickerWidth = 60

// PickerForm wraps a huh form collecting a URL and display text for one
// picker kind. The form runs embedded in the editor program, so completion
// and abort are read from Form.State after each update.
type PickerForm struct {
	Kind  editor.PickerKind
	Title string
	Form  *huh.Form

	url    string
	text   string
	labels map[string]string // media url -> library label
}

// NewLinkForm builds the link picker: URL and optional link text.
func NewLinkForm() *PickerForm {
	p := &PickerForm{Kind: editor.PickerLink, Title: "Insert Link"}
	p.Form = newPickerForm(huh.NewGroup(
		huh.NewInput().
			Title("URL").
			Placeholder("https://").
			Value(&p.url).
			Validate(validate.URL),
		huh.NewInput().
			Title("Text").
			Description("Leave empty to use the URL").
			Value(&p.text),
	))
	return p
}

// NewMediaForm builds the media picker. With a non-empty library the URL is
// chosen from a list; otherwise it is typed in.
func NewMediaForm(lib *media.Library) *PickerForm {
	p := &PickerForm{Kind: editor.PickerMedia, Title: "Insert Image", labels: map[string]string{}}

	var source huh.Field
	if lib != nil && lib.Len() > 0 {
		opts := make([]huh.Option[string], 0, lib.Len())
		for _, item := range lib.Items() {
			opts = append(opts, huh.NewOption(item.Label, item.URL))
			p.labels[item.URL] = item.Label
		}
		source = huh.NewSelect[string]().
			Title("Media").
			Options(opts...).
			Height(min(len(opts)+2, 10)).
			Value(&p.url).
			Validate(validate.URL)
	} else {
		source = huh.NewInput().
			Title("Image URL").
			Placeholder("https://").
			Value(&p.url).
			Validate(validate.URL)
	}

	p.Form = newPickerForm(huh.NewGroup(
		source,
		huh.NewInput().
			Title("Alt text").
			Description("Leave empty to use the library label").
			Value(&p.text),
	))
	return p
}

func newPickerForm(groups ...*huh.Group) *huh.Form {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel"))

	return huh.NewForm(groups...).
		WithTheme(styles.FormTheme()).
		WithKeyMap(km).
		WithWidth(pickerWidth).
		WithShowHelp(true)
}

// Done reports whether the form was submitted or aborted.
func (p *PickerForm) Done() bool {
	return p.Form.State == huh.StateCompleted || p.Form.State == huh.StateAborted
}

// Result converts the settled form into a picker result. Empty link text
// falls back to the URL; empty alt text falls back to the library label.
func (p *PickerForm) Result() editor.PickerResult {
	if p.Form.State != huh.StateCompleted {
		return editor.Cancelled()
	}

	u := strings.TrimSpace(p.url)
	text := strings.TrimSpace(p.text)
	if text == "" {
		switch p.Kind {
		case editor.PickerLink:
			text = u
		case editor.PickerMedia:
			text = p.labels[u]
		}
	}
	return editor.Chosen(u, text)
}
