package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/richedit/internal/core/styles"
	"github.com/hay-kot/richedit/internal/editor"
)

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	if m.session.Mode() == editor.ModePreview {
		body = m.preview.View()
	} else {
		body = m.pane.View(m.session.Buffer())
	}

	screen := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderToolbar(),
		body,
		m.renderStatusBar(),
		m.help.ShortHelpView(m.handler.HelpBindings()),
	)

	return m.modals.Overlay(screen)
}

// renderToolbar lists the catalog commands with their keys. Buttons are
// dimmed while commands would be refused.
func (m *Model) renderToolbar() string {
	enabled := m.state() == stateEditing

	catalog := m.session.Catalog()
	buttons := make([]string, 0, len(catalog.IDs()))
	for _, id := range catalog.IDs() {
		label := catalog.Label(id)
		if k, ok := m.handler.KeyFor(id); ok {
			label = fmt.Sprintf("%s %s", label, k)
		}

		if enabled {
			buttons = append(buttons, styles.ToolbarButtonStyle.Render(label))
		} else {
			buttons = append(buttons, styles.ToolbarDisabledStyle.Render(label))
		}
	}

	style := styles.ToolbarStyle
	if m.width > 0 {
		style = style.MaxWidth(m.width)
	}
	return style.Render(strings.Join(buttons, " "))
}

func (m *Model) renderStatusBar() string {
	var parts []string

	if m.session.Mode() == editor.ModePreview {
		parts = append(parts, styles.StatusModePreviewStyle.Render("PREVIEW"))
	} else {
		parts = append(parts, styles.StatusModeEditStyle.Render("EDIT"))
	}

	sel := m.session.Selection()
	if sel.Empty() {
		parts = append(parts, fmt.Sprintf("caret %s", sel))
	} else {
		parts = append(parts, fmt.Sprintf("sel %s (%d)", sel, sel.Len()))
	}
	parts = append(parts, fmt.Sprintf("%d bytes", len(m.session.Buffer())))

	if m.dirty {
		parts = append(parts, styles.StatusDirtyStyle.Render("modified"))
	}

	if m.notice != "" {
		if m.noticeErr {
			parts = append(parts, styles.TextErrorStyle.Render(m.notice))
		} else {
			parts = append(parts, styles.TextWarningStyle.Render(m.notice))
		}
	}

	style := styles.StatusBarStyle
	if m.width > 0 {
		style = style.Width(m.width)
	}
	return style.Render(strings.Join(parts, "  "))
}
