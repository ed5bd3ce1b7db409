package editor

// Edit is the result of a buffer operation. Selection always refers to
// offsets in Buffer.
type Edit struct {
	Buffer    string    `json:"buffer"`
	Selection Selection `json:"selection"`
}

// Apply wraps the selected text in spec's prefix and suffix, or inserts the
// placeholder between them when nothing is selected. The caret lands right
// after the suffix in both cases so that consecutive commands compose without
// drifting into the markup they just produced.
func Apply(buf string, sel Selection, spec InsertionSpec) Edit {
	sel = sel.Clamp(buf)

	inserted := buf[sel.Start:sel.End]
	if inserted == "" {
		inserted = spec.Placeholder
	}

	construct := spec.Prefix + inserted + spec.Suffix
	out := buf[:sel.Start] + construct + buf[sel.End:]

	return Edit{
		Buffer:    out,
		Selection: Caret(sel.Start + len(construct)),
	}
}

// ApplyRaw inserts text at offset without touching surrounding content.
func ApplyRaw(buf string, offset int, text string) Edit {
	offset = clampOffset(buf, offset)

	return Edit{
		Buffer:    buf[:offset] + text + buf[offset:],
		Selection: Caret(offset + len(text)),
	}
}

// Replace substitutes the selected range with text. An empty text deletes
// the range. This is the path taken by ordinary keystrokes.
func Replace(buf string, sel Selection, text string) Edit {
	sel = sel.Clamp(buf)

	return Edit{
		Buffer:    buf[:sel.Start] + text + buf[sel.End:],
		Selection: Caret(sel.Start + len(text)),
	}
}
