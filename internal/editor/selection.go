package editor

import (
	"fmt"
	"unicode/utf8"
)

// Selection is a [Start, End) byte range into the buffer. Start == End is a
// caret with no span.
type Selection struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Caret returns a collapsed selection at offset.
func Caret(offset int) Selection {
	return Selection{Start: offset, End: offset}
}

// Empty reports whether the selection is a caret.
func (s Selection) Empty() bool { return s.Start == s.End }

// Len returns the number of bytes spanned.
func (s Selection) Len() int { return s.End - s.Start }

func (s Selection) String() string {
	if s.Empty() {
		return fmt.Sprintf("%d", s.Start)
	}
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Clamp returns a selection that is valid for buf: a reversed pair is swapped,
// both ends are clamped to [0, len(buf)], and offsets inside a multi-byte rune
// snap back to the start of that rune.
func (s Selection) Clamp(buf string) Selection {
	start, end := s.Start, s.End
	if end < start {
		start, end = end, start
	}
	return Selection{
		Start: clampOffset(buf, start),
		End:   clampOffset(buf, end),
	}
}

func clampOffset(buf string, off int) int {
	if off <= 0 {
		return 0
	}
	if off >= len(buf) {
		return len(buf)
	}
	for off > 0 && !utf8.RuneStart(buf[off]) {
		off--
	}
	return off
}

// SelectionTracker remembers the most recent selection of the edit surface.
// It outlives focus changes: a modal opening over the surface does not reset
// it. The zero value reports a caret at 0.
type SelectionTracker struct {
	current Selection
}

// Record stores sel as the latest known selection.
func (t *SelectionTracker) Record(sel Selection) {
	t.current = sel
}

// Current returns the last recorded selection.
func (t *SelectionTracker) Current() Selection {
	return t.current
}
