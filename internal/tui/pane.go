package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/richedit/internal/core/styles"
	"github.com/hay-kot/richedit/internal/editor"
)

// EditPane is the terminal input surface. It owns the anchor and caret of the
// visible selection and reports changes back to the session; the session
// writes caret positions into it after every edit.
type EditPane struct {
	anchor  int
	caret   int
	focused bool
	top     int // first visible line

	width, height int
}

// NewEditPane creates a focused pane with the caret at offset 0.
func NewEditPane() *EditPane {
	return &EditPane{focused: true, height: 10}
}

// SetSelection implements editor.Surface.
func (p *EditPane) SetSelection(sel editor.Selection) {
	p.anchor = sel.Start
	p.caret = sel.End
}

// Focus implements editor.Surface.
func (p *EditPane) Focus() { p.focused = true }

// Blur removes focus, hiding the caret.
func (p *EditPane) Blur() { p.focused = false }

// Focused reports whether the pane has focus.
func (p *EditPane) Focused() bool { return p.focused }

// SetSize sets the pane dimensions in cells.
func (p *EditPane) SetSize(w, h int) {
	p.width = w
	p.height = max(h, 1)
}

// Selection returns the visible selection in normalized order.
func (p *EditPane) Selection() editor.Selection {
	return editor.Selection{Start: min(p.anchor, p.caret), End: max(p.anchor, p.caret)}
}

// Caret returns the caret offset. With a selection extended leftward this is
// the selection start.
func (p *EditPane) Caret() int { return p.caret }

// Motion is a caret movement over a buffer.
type Motion int

const (
	MotionLeft Motion = iota
	MotionRight
	MotionHome
	MotionEnd
	MotionUp
	MotionDown
)

// Move moves the caret. With extend set the anchor stays put and the
// selection grows; otherwise the selection collapses onto the new caret.
func (p *EditPane) Move(buf string, m Motion, extend bool) {
	p.clamp(buf)

	if !extend && p.anchor != p.caret {
		sel := p.Selection()
		switch m {
		case MotionLeft:
			p.anchor, p.caret = sel.Start, sel.Start
			return
		case MotionRight:
			p.anchor, p.caret = sel.End, sel.End
			return
		}
	}

	switch m {
	case MotionLeft:
		if p.caret > 0 {
			_, size := utf8.DecodeLastRuneInString(buf[:p.caret])
			p.caret -= size
		}
	case MotionRight:
		if p.caret < len(buf) {
			_, size := utf8.DecodeRuneInString(buf[p.caret:])
			p.caret += size
		}
	case MotionHome:
		p.caret = lineStart(buf, p.caret)
	case MotionEnd:
		p.caret = lineEnd(buf, p.caret)
	case MotionUp:
		start := lineStart(buf, p.caret)
		if start > 0 {
			col := utf8.RuneCountInString(buf[start:p.caret])
			prev := lineStart(buf, start-1)
			p.caret = offsetAtColumn(buf, prev, col)
		}
	case MotionDown:
		end := lineEnd(buf, p.caret)
		if end < len(buf) {
			col := utf8.RuneCountInString(buf[lineStart(buf, p.caret):p.caret])
			p.caret = offsetAtColumn(buf, end+1, col)
		}
	}

	if !extend {
		p.anchor = p.caret
	}
}

// SelectAll selects the whole buffer.
func (p *EditPane) SelectAll(buf string) {
	p.anchor = 0
	p.caret = len(buf)
}

func (p *EditPane) clamp(buf string) {
	sel := editor.Selection{Start: p.anchor, End: p.caret}
	if p.anchor > p.caret {
		sel = editor.Selection{Start: p.caret, End: p.anchor}
	}
	sel = sel.Clamp(buf)
	if p.anchor > p.caret {
		p.anchor, p.caret = sel.End, sel.Start
		return
	}
	p.anchor, p.caret = sel.Start, sel.End
}

// View renders buf with line numbers, the selection highlighted and the caret
// drawn when focused. The view scrolls to keep the caret line visible.
func (p *EditPane) View(buf string) string {
	p.clamp(buf)

	lines := strings.Split(buf, "\n")
	caretLine := strings.Count(buf[:p.caret], "\n")
	p.scrollTo(caretLine, len(lines))

	gutter := len(fmt.Sprint(len(lines)))
	sel := p.Selection()

	var b strings.Builder
	offset := 0
	for i, line := range lines {
		lineOffset := offset
		offset += len(line) + 1

		if i < p.top || i >= p.top+p.height {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}

		b.WriteString(styles.LineNumberStyle.Render(fmt.Sprintf("%*d", gutter, i+1)))

		for j, r := range line {
			pos := lineOffset + j
			switch {
			case p.focused && pos == p.caret:
				b.WriteString(styles.CaretStyle.Render(string(r)))
			case pos >= sel.Start && pos < sel.End:
				b.WriteString(styles.SelectionStyle.Render(string(r)))
			default:
				b.WriteRune(r)
			}
		}

		if p.focused && p.caret == lineOffset+len(line) {
			b.WriteString(styles.CaretStyle.Render(" "))
		}
	}

	style := styles.EditorPaneStyle
	if p.focused {
		style = styles.EditorPaneFocusedStyle
	}
	if p.width > 0 {
		style = style.Width(p.width)
	}
	return style.Render(lipgloss.NewStyle().Height(min(p.height, len(lines))).Render(b.String()))
}

func (p *EditPane) scrollTo(line, total int) {
	if line < p.top {
		p.top = line
	}
	if line >= p.top+p.height {
		p.top = line - p.height + 1
	}
	p.top = max(0, min(p.top, total-1))
}

func lineStart(buf string, off int) int {
	return strings.LastIndexByte(buf[:off], '\n') + 1
}

func lineEnd(buf string, off int) int {
	i := strings.IndexByte(buf[off:], '\n')
	if i < 0 {
		return len(buf)
	}
	return off + i
}

// offsetAtColumn returns the offset col runes into the line starting at
// start, stopping at the end of that line.
func offsetAtColumn(buf string, start, col int) int {
	end := lineEnd(buf, start)
	off := start
	for n := 0; n < col && off < end; n++ {
		_, size := utf8.DecodeRuneInString(buf[off:end])
		off += size
	}
	return off
}
