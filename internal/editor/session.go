package editor

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hay-kot/richedit/internal/core/logging"
)

// Surface is the input surface the session writes caret positions back to.
// Reads flow the other way: the surface reports selection changes through
// Session.Select.
type Surface interface {
	SetSelection(sel Selection)
	Focus()
}

// ChangeFunc receives the buffer after every successful mutation.
type ChangeFunc func(buf string)

// Session composes the tracker, catalog, picker coordinator and view mode
// around one buffer. It is the engine-side half of the editor shell; a UI
// embeds it and forwards user actions.
type Session struct {
	id       string
	ctx      context.Context
	buf      string
	catalog  *Catalog
	tracker  SelectionTracker
	pickers  *PickerCoordinator
	view     ViewModeController
	surface  Surface
	onChange ChangeFunc
	logger   zerolog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithCatalog replaces the default command catalog.
func WithCatalog(c *Catalog) SessionOption {
	return func(s *Session) { s.catalog = c }
}

// WithSurface sets the surface that receives caret updates.
func WithSurface(surface Surface) SessionOption {
	return func(s *Session) { s.surface = surface }
}

// WithChangeFunc sets the change notifier.
func WithChangeFunc(fn ChangeFunc) SessionOption {
	return func(s *Session) { s.onChange = fn }
}

// WithPickerSurface sets the surface that displays link and media pickers.
func WithPickerSurface(ps PickerSurface) SessionOption {
	return func(s *Session) { s.pickers.SetSurface(ps) }
}

// WithLogger sets the session logger.
func WithLogger(l zerolog.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// WithField tags log events with the name of the form field being edited.
func WithField(name string) SessionOption {
	return func(s *Session) { s.ctx = logging.WithField(s.ctx, name) }
}

// NewSession starts an editing session seeded with initial. The caret starts
// at offset 0.
func NewSession(initial string, opts ...SessionOption) *Session {
	id := uuid.NewString()
	s := &Session{
		id:      id,
		ctx:     logging.WithSessionID(context.Background(), id),
		buf:     initial,
		catalog: DefaultCatalog(),
		pickers: NewPickerCoordinator(nil, zerolog.Nop()),
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.pickers.logger = s.logger.With().Ctx(s.ctx).Logger()
	return s
}

// ID returns the session id used in log context.
func (s *Session) ID() string { return s.id }

// Buffer returns the current buffer.
func (s *Session) Buffer() string { return s.buf }

// Selection returns the last recorded selection.
func (s *Session) Selection() Selection { return s.tracker.Current() }

// Mode returns the current view mode.
func (s *Session) Mode() ViewMode { return s.view.Mode() }

// Catalog returns the command catalog in use.
func (s *Session) Catalog() *Catalog { return s.catalog }

// Pickers returns the picker coordinator.
func (s *Session) Pickers() *PickerCoordinator { return s.pickers }

// SetSurface attaches the input surface after construction.
func (s *Session) SetSurface(surface Surface) { s.surface = surface }

// Select records a selection change reported by the surface.
func (s *Session) Select(sel Selection) {
	s.tracker.Record(sel.Clamp(s.buf))
}

// SetBuffer replaces the buffer from outside, for example when the owning
// form resets the field. The change notifier is not called.
func (s *Session) SetBuffer(value string) {
	s.buf = value
	s.tracker.Record(s.tracker.Current().Clamp(value))
}

// Insert replaces the current selection with text.
func (s *Session) Insert(text string) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	s.commit(Replace(s.buf, s.tracker.Current(), text))
	return nil
}

// DeleteBackward removes the selection, or the rune before the caret.
func (s *Session) DeleteBackward() error {
	if err := s.checkWritable(); err != nil {
		return err
	}

	sel := s.tracker.Current().Clamp(s.buf)
	if sel.Empty() {
		if sel.Start == 0 {
			return nil
		}
		_, size := utf8.DecodeLastRuneInString(s.buf[:sel.Start])
		sel.Start -= size
	}
	s.commit(Replace(s.buf, sel, ""))
	return nil
}

// DeleteForward removes the selection, or the rune after the caret.
func (s *Session) DeleteForward() error {
	if err := s.checkWritable(); err != nil {
		return err
	}

	sel := s.tracker.Current().Clamp(s.buf)
	if sel.Empty() {
		if sel.End == len(s.buf) {
			return nil
		}
		_, size := utf8.DecodeRuneInString(s.buf[sel.End:])
		sel.End += size
	}
	s.commit(Replace(s.buf, sel, ""))
	return nil
}

// Run executes a catalog command against the current selection. Formatting
// commands edit the buffer immediately; link and image commands open the
// matching picker and edit on ResolvePicker.
func (s *Session) Run(id CommandID) error {
	spec, err := s.catalog.Lookup(id)
	if err != nil {
		s.logger.Error().Ctx(s.ctx).Err(err).Msg("command not wired")
		return err
	}

	if err := s.checkWritable(); err != nil {
		s.logger.Warn().Ctx(s.ctx).Err(err).Str("command", string(id)).Msg("command refused")
		return err
	}

	sel := s.tracker.Current()

	if spec.Picker != PickerNone {
		if err := s.pickers.Open(spec.Picker, sel); err != nil {
			return fmt.Errorf("run %s: %w", id, err)
		}
		return nil
	}

	edit := Apply(s.buf, sel, spec)
	s.logger.Debug().Ctx(s.ctx).
		Str("command", string(id)).
		Stringer("selection", sel).
		Stringer("caret", edit.Selection).
		Msg("command applied")

	s.commit(edit)
	return nil
}

// ResolvePicker completes the open picker. Cancellation leaves the buffer and
// selection untouched but still refocuses the surface, since the picker took
// focus away.
func (s *Session) ResolvePicker(res PickerResult) error {
	edit, ok, err := s.pickers.Resolve(s.buf, res)
	if err != nil {
		return err
	}

	if !ok {
		s.refocus()
		return nil
	}

	s.commit(edit)
	return nil
}

// ToggleMode switches between edit and preview. Neither the buffer nor the
// remembered selection changes; returning to edit re-presents the selection
// on the surface.
func (s *Session) ToggleMode() ViewMode {
	mode := s.view.Toggle()
	s.logger.Debug().Ctx(s.ctx).Stringer("mode", mode).Msg("view mode changed")

	if mode == ModeEdit {
		s.refocus()
	}
	return mode
}

func (s *Session) checkWritable() error {
	if s.view.Mode() == ModePreview {
		return ErrReadOnly
	}
	if s.pickers.Busy() {
		return ErrPickerPending
	}
	return nil
}

func (s *Session) commit(edit Edit) {
	s.buf = edit.Buffer
	s.tracker.Record(edit.Selection)

	if s.onChange != nil {
		s.onChange(s.buf)
	}
	s.refocus()
}

func (s *Session) refocus() {
	if s.surface == nil {
		return
	}
	s.surface.SetSelection(s.tracker.Current())
	s.surface.Focus()
}

// IsRefusal reports whether err is one of the expected refusals (preview
// mode, picker pending, picker busy) rather than a wiring error.
func IsRefusal(err error) bool {
	return errors.Is(err, ErrReadOnly) ||
		errors.Is(err, ErrPickerPending) ||
		errors.Is(err, ErrPickerBusy)
}
