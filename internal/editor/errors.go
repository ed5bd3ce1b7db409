package editor

import "errors"

var (
	// ErrUnknownCommand is returned when a command id is not in the catalog.
	// It indicates a wiring mistake and should never be ignored.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrPickerBusy is returned when a picker is opened while another is pending.
	ErrPickerBusy = errors.New("picker already open")

	// ErrNoPendingPicker is returned when a picker result arrives with no open picker.
	ErrNoPendingPicker = errors.New("no pending picker")

	// ErrPickerPending is returned when a mutating command is refused because a
	// picker is waiting to insert at a captured offset.
	ErrPickerPending = errors.New("command disabled while picker is open")

	// ErrReadOnly is returned when an edit is attempted in preview mode.
	ErrReadOnly = errors.New("buffer is read-only in preview mode")
)
