package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/hay-kot/richedit/internal/core/styles"
	"github.com/hay-kot/richedit/internal/editor"
	"github.com/hay-kot/richedit/internal/media"
)

// ModalCoordinator owns the picker dialog shown over the editor and the
// request it was opened for. It is the editor's PickerSurface.
type ModalCoordinator struct {
	Picker  *PickerForm
	Request editor.PendingPickerRequest

	library     *media.Library
	initPending bool
	logger      zerolog.Logger

	// Sizing
	width, height int
}

// NewModalCoordinator creates a coordinator offering lib in the media picker.
func NewModalCoordinator(lib *media.Library, logger zerolog.Logger) *ModalCoordinator {
	return &ModalCoordinator{library: lib, logger: logger}
}

// SetSize updates the available dimensions for modal rendering.
func (mc *ModalCoordinator) SetSize(w, h int) {
	mc.width = w
	mc.height = h
}

// ShowPicker implements editor.PickerSurface.
func (mc *ModalCoordinator) ShowPicker(req editor.PendingPickerRequest) {
	switch req.Kind {
	case editor.PickerLink:
		mc.Picker = NewLinkForm()
	case editor.PickerMedia:
		mc.Picker = NewMediaForm(mc.library)
	default:
		mc.logger.Error().Stringer("kind", req.Kind).Msg("no picker for kind")
		return
	}

	mc.Request = req
	mc.initPending = true
	mc.logger.Debug().Stringer("kind", req.Kind).Stringer("selection", req.Captured).Msg("picker shown")
}

// Active reports whether a picker dialog is showing.
func (mc *ModalCoordinator) Active() bool { return mc.Picker != nil }

// TakeInit returns the form's init command once after ShowPicker.
func (mc *ModalCoordinator) TakeInit() tea.Cmd {
	if !mc.initPending || mc.Picker == nil {
		return nil
	}
	mc.initPending = false
	return mc.Picker.Form.Init()
}

// Update forwards msg to the picker form. When the form settles the dialog is
// dismissed and its result returned with done set.
func (mc *ModalCoordinator) Update(msg tea.Msg) (cmd tea.Cmd, res editor.PickerResult, done bool) {
	if mc.Picker == nil {
		return nil, editor.PickerResult{}, false
	}

	model, cmd := mc.Picker.Form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		mc.Picker.Form = f
	}

	res, done = mc.Settle()
	return cmd, res, done
}

// Settle checks whether the picker form finished and, if so, dismisses it.
func (mc *ModalCoordinator) Settle() (editor.PickerResult, bool) {
	if mc.Picker == nil || !mc.Picker.Done() {
		return editor.PickerResult{}, false
	}

	res := mc.Picker.Result()
	mc.Dismiss()
	return res, true
}

// Dismiss closes the picker without producing a result.
func (mc *ModalCoordinator) Dismiss() {
	mc.Picker = nil
	mc.Request = editor.PendingPickerRequest{}
	mc.initPending = false
}

// Overlay renders the picker centered over the screen. It returns the
// background string unchanged if no modal is active.
func (mc *ModalCoordinator) Overlay(bg string) string {
	if mc.Picker == nil {
		return bg
	}

	w, h := mc.width, mc.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(mc.Picker.Title),
		"",
		mc.Picker.Form.View(),
	)

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, styles.ModalStyle.Render(content))
}
