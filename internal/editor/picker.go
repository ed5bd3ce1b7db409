package editor

import (
	"fmt"

	"github.com/rs/zerolog"
)

// PickerKind identifies which picker a request is waiting on.
type PickerKind int

const (
	PickerNone PickerKind = iota
	PickerLink
	PickerMedia
)

func (k PickerKind) String() string {
	switch k {
	case PickerLink:
		return "link"
	case PickerMedia:
		return "media"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k PickerKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *PickerKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "link":
		*k = PickerLink
	case "media":
		*k = PickerMedia
	case "none", "":
		*k = PickerNone
	default:
		return fmt.Errorf("unknown picker kind %q", b)
	}
	return nil
}

// PickerState is the coordinator's state.
type PickerState int

const (
	StateIdle PickerState = iota
	StateAwaitingLink
	StateAwaitingMedia
)

func (s PickerState) String() string {
	switch s {
	case StateAwaitingLink:
		return "awaiting-link"
	case StateAwaitingMedia:
		return "awaiting-media"
	default:
		return "idle"
	}
}

// PendingPickerRequest is the open picker and the selection captured when it
// opened. The selection is a copy; later selection changes do not affect it.
type PendingPickerRequest struct {
	Kind     PickerKind
	Captured Selection
}

// PickerResult is what a picker hands back: a URL and display text, or a
// cancellation.
type PickerResult struct {
	URL       string
	Text      string
	Cancelled bool
}

// Cancelled returns the cancellation result.
func Cancelled() PickerResult {
	return PickerResult{Cancelled: true}
}

// Chosen returns a result carrying url and text.
func Chosen(url, text string) PickerResult {
	return PickerResult{URL: url, Text: text}
}

// PickerSurface presents picker UI to the user. The surface must eventually
// lead to exactly one Resolve call for every ShowPicker.
type PickerSurface interface {
	ShowPicker(req PendingPickerRequest)
}

// PickerSurfaceFunc adapts a function to PickerSurface.
type PickerSurfaceFunc func(req PendingPickerRequest)

func (f PickerSurfaceFunc) ShowPicker(req PendingPickerRequest) { f(req) }

// PickerCoordinator runs the Idle -> Awaiting* -> Idle state machine for link
// and media insertion.
type PickerCoordinator struct {
	state   PickerState
	pending PendingPickerRequest
	surface PickerSurface
	logger  zerolog.Logger
}

// NewPickerCoordinator creates an idle coordinator. surface may be nil.
func NewPickerCoordinator(surface PickerSurface, logger zerolog.Logger) *PickerCoordinator {
	return &PickerCoordinator{
		surface: surface,
		logger:  logger,
	}
}

// SetSurface replaces the picker surface.
func (pc *PickerCoordinator) SetSurface(surface PickerSurface) {
	pc.surface = surface
}

// State returns the current state.
func (pc *PickerCoordinator) State() PickerState { return pc.state }

// Busy reports whether a picker is open.
func (pc *PickerCoordinator) Busy() bool { return pc.state != StateIdle }

// Pending returns the open request, if any.
func (pc *PickerCoordinator) Pending() (PendingPickerRequest, bool) {
	if pc.state == StateIdle {
		return PendingPickerRequest{}, false
	}
	return pc.pending, true
}

// OpenLink captures sel and waits for a link.
func (pc *PickerCoordinator) OpenLink(sel Selection) error {
	return pc.open(PickerLink, sel)
}

// OpenMedia captures sel and waits for a media choice.
func (pc *PickerCoordinator) OpenMedia(sel Selection) error {
	return pc.open(PickerMedia, sel)
}

// Open dispatches to OpenLink or OpenMedia by kind.
func (pc *PickerCoordinator) Open(kind PickerKind, sel Selection) error {
	return pc.open(kind, sel)
}

func (pc *PickerCoordinator) open(kind PickerKind, sel Selection) error {
	if pc.state != StateIdle {
		return fmt.Errorf("open %s picker: %w (awaiting %s)", kind, ErrPickerBusy, pc.pending.Kind)
	}

	switch kind {
	case PickerLink:
		pc.state = StateAwaitingLink
	case PickerMedia:
		pc.state = StateAwaitingMedia
	default:
		return fmt.Errorf("open picker: invalid kind %d", kind)
	}

	pc.pending = PendingPickerRequest{Kind: kind, Captured: sel}

	pc.logger.Debug().
		Str("picker", kind.String()).
		Stringer("captured", sel).
		Msg("picker opened")

	if pc.surface != nil {
		pc.surface.ShowPicker(pc.pending)
	}
	return nil
}

// Resolve completes the open picker against buf. A cancelled result returns
// ok == false and leaves buf untouched. Otherwise the markup for the pending
// kind is inserted at the captured selection start.
func (pc *PickerCoordinator) Resolve(buf string, res PickerResult) (edit Edit, ok bool, err error) {
	if pc.state == StateIdle {
		return Edit{}, false, ErrNoPendingPicker
	}

	req := pc.pending
	pc.state = StateIdle
	pc.pending = PendingPickerRequest{}

	if res.Cancelled {
		pc.logger.Debug().Str("picker", req.Kind.String()).Msg("picker cancelled")
		return Edit{}, false, nil
	}

	markup := BuildMarkup(req.Kind, res.URL, res.Text)
	edit = ApplyRaw(buf, req.Captured.Start, markup)

	pc.logger.Debug().
		Str("picker", req.Kind.String()).
		Int("offset", req.Captured.Start).
		Int("caret", edit.Selection.Start).
		Msg("picker resolved")

	return edit, true, nil
}

// BuildMarkup returns the anchor or image tag for a picker result. Values are
// inserted verbatim.
func BuildMarkup(kind PickerKind, url, text string) string {
	switch kind {
	case PickerMedia:
		return fmt.Sprintf(`<img src="%s" alt="%s" />`, url, text)
	default:
		return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`, url, text)
	}
}
