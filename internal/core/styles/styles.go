// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"sort"

	"github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
	"catppuccin": {
		Primary:    lipgloss.Color("#89b4fa"), // Blue
		Secondary:  lipgloss.Color("#94e2d5"), // Teal
		Foreground: lipgloss.Color("#cdd6f4"), // Text
		Muted:      lipgloss.Color("#6c7086"), // Overlay0
		Background: lipgloss.Color("#1e1e2e"), // Base
		Surface:    lipgloss.Color("#313244"), // Surface0
		Success:    lipgloss.Color("#a6e3a1"), // Green
		Warning:    lipgloss.Color("#f9e2af"), // Yellow
		Error:      lipgloss.Color("#f38ba8"), // Red
	},
	"onedark": {
		Primary:    lipgloss.Color("#61afef"),
		Secondary:  lipgloss.Color("#56b6c2"),
		Foreground: lipgloss.Color("#abb2bf"),
		Muted:      lipgloss.Color("#5c6370"),
		Background: lipgloss.Color("#282c34"),
		Surface:    lipgloss.Color("#3e4452"),
		Success:    lipgloss.Color("#98c379"),
		Warning:    lipgloss.Color("#e5c07b"),
		Error:      lipgloss.Color("#e06c75"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	CommandStyle       lipgloss.Style
	DividerStyle       lipgloss.Style
	TextMutedStyle     lipgloss.Style
	TextSuccessStyle   lipgloss.Style
	TextWarningStyle   lipgloss.Style
	TextErrorStyle     lipgloss.Style

	// Modal styles, used by the picker overlays.
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style

	// Editor surface styles.
	EditorPaneStyle        lipgloss.Style
	EditorPaneFocusedStyle lipgloss.Style
	CaretStyle             lipgloss.Style
	SelectionStyle         lipgloss.Style
	LineNumberStyle        lipgloss.Style

	// Toolbar and status bar.
	ToolbarStyle           lipgloss.Style
	ToolbarButtonStyle     lipgloss.Style
	ToolbarDisabledStyle   lipgloss.Style
	StatusBarStyle         lipgloss.Style
	StatusModeEditStyle    lipgloss.Style
	StatusModePreviewStyle lipgloss.Style
	StatusDirtyStyle       lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	CommandStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	DividerStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	TextMutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	TextWarningStyle = lipgloss.NewStyle().Foreground(p.Warning)
	TextErrorStyle = lipgloss.NewStyle().Foreground(p.Error)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Foreground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	EditorPaneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(0, 1)
	EditorPaneFocusedStyle = EditorPaneStyle.
		BorderForeground(p.Primary)
	CaretStyle = lipgloss.NewStyle().
		Reverse(true)
	SelectionStyle = lipgloss.NewStyle().
		Background(p.Surface).
		Foreground(p.Foreground)
	LineNumberStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		PaddingRight(1)

	ToolbarStyle = lipgloss.NewStyle().
		PaddingBottom(1)
	ToolbarButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(p.Foreground).
		Background(p.Surface)
	ToolbarDisabledStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(p.Muted)
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		PaddingTop(1)
	StatusModeEditStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(p.Background).
		Background(p.Primary)
	StatusModePreviewStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(p.Background).
		Background(p.Success)
	StatusDirtyStyle = lipgloss.NewStyle().
		Foreground(p.Warning)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

func colorHexPtr(c lipgloss.Color) *string {
	if c == "" {
		return nil
	}
	hex := string(c)
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() ansi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig
	p := CurrentPalette

	fg := colorHexPtr(p.Foreground)
	primary := colorHexPtr(p.Primary)
	secondary := colorHexPtr(p.Secondary)
	muted := colorHexPtr(p.Muted)
	surface := colorHexPtr(p.Surface)

	cfg.Document.Color = fg

	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = surface
	cfg.H2.Color = primary
	cfg.H3.Color = primary
	cfg.H4.Color = primary
	cfg.H5.Color = primary
	cfg.H6.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary

	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	cfg.Table.Color = fg

	return cfg
}

// FormTheme returns a huh theme matching the active palette.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()
	p := CurrentPalette

	t.Focused.Base = t.Focused.Base.BorderForeground(p.Primary)
	t.Focused.Title = t.Focused.Title.Foreground(p.Primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(p.Muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(p.Error)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(p.Error)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p.Secondary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p.Success)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(p.Muted).Bold(false)

	return t
}
