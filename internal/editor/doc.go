// Package editor implements the markup editing engine embedded by content
// forms: a text buffer, the selection inside it, a catalog of formatting
// commands that wrap or insert markup around the selection, a picker state
// machine for link and media insertion, and the edit/preview mode toggle.
//
// The engine is single-threaded. All mutation happens synchronously in
// response to a discrete user action, and all offsets are byte offsets into
// the UTF-8 buffer.
package editor
