package editor

// ViewMode selects between the editable buffer and its rendered preview.
type ViewMode int

const (
	ModeEdit ViewMode = iota
	ModePreview
)

func (m ViewMode) String() string {
	if m == ModePreview {
		return "preview"
	}
	return "edit"
}

// ViewModeController is a two-state toggle. It owns no buffer or selection
// state, so switching modes can never change either.
type ViewModeController struct {
	mode ViewMode
}

// Mode returns the current mode.
func (v *ViewModeController) Mode() ViewMode { return v.mode }

// Toggle flips the mode and returns the new one.
func (v *ViewModeController) Toggle() ViewMode {
	if v.mode == ModeEdit {
		v.mode = ModePreview
	} else {
		v.mode = ModeEdit
	}
	return v.mode
}

// Set forces a mode.
func (v *ViewModeController) Set(m ViewMode) {
	v.mode = m
}
