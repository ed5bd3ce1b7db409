package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/richedit/internal/editor"
	"github.com/hay-kot/richedit/pkg/tuitest"
)

func TestEditPane_Move(t *testing.T) {
	const buf = "héllo\nab\nxyz"

	tests := []struct {
		name   string
		start  int
		motion Motion
		want   int
	}{
		{"left at start stays", 0, MotionLeft, 0},
		{"right steps over multibyte rune", 1, MotionRight, 3},
		{"left steps over multibyte rune", 3, MotionLeft, 1},
		{"right at end stays", len(buf), MotionRight, len(buf)},
		{"home goes to line start", 9, MotionHome, 7},
		{"end goes to line end", 0, MotionEnd, 6},
		{"down keeps column", 1, MotionDown, 8},
		{"down clamps to shorter line", 6, MotionDown, 9},
		{"up keeps rune column", 12, MotionUp, 9},
		{"up on first line stays", 3, MotionUp, 3},
		{"down on last line stays", 11, MotionDown, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewEditPane()
			p.SetSelection(editor.Selection{Start: tt.start, End: tt.start})
			p.Move(buf, tt.motion, false)
			assert.Equal(t, tt.want, p.Caret())
			assert.True(t, p.Selection().Empty())
		})
	}
}

func TestEditPane_MoveExtend(t *testing.T) {
	const buf = "hello world"

	p := NewEditPane()
	p.SetSelection(editor.Selection{Start: 5, End: 5})

	p.Move(buf, MotionLeft, true)
	p.Move(buf, MotionLeft, true)
	assert.Equal(t, editor.Selection{Start: 3, End: 5}, p.Selection())
	assert.Equal(t, 3, p.Caret())

	p.Move(buf, MotionEnd, true)
	assert.Equal(t, editor.Selection{Start: 5, End: 11}, p.Selection(), "anchor stays put")
}

func TestEditPane_MoveCollapses(t *testing.T) {
	const buf = "hello world"

	p := NewEditPane()
	p.SetSelection(editor.Selection{Start: 2, End: 7})
	p.Move(buf, MotionLeft, false)
	assert.Equal(t, editor.Selection{Start: 2, End: 2}, p.Selection())

	p.SetSelection(editor.Selection{Start: 2, End: 7})
	p.Move(buf, MotionRight, false)
	assert.Equal(t, editor.Selection{Start: 7, End: 7}, p.Selection())
}

func TestEditPane_SelectAll(t *testing.T) {
	p := NewEditPane()
	p.SelectAll("abc")
	assert.Equal(t, editor.Selection{Start: 0, End: 3}, p.Selection())
}

func TestEditPane_MoveClampsStaleOffsets(t *testing.T) {
	p := NewEditPane()
	p.SetSelection(editor.Selection{Start: 40, End: 40})
	p.Move("abc", MotionLeft, false)
	assert.Equal(t, 2, p.Caret())
}

func TestEditPane_View(t *testing.T) {
	p := NewEditPane()
	p.SetSize(40, 5)
	p.SetSelection(editor.Selection{Start: 0, End: 0})

	out := tuitest.StripANSI(p.View("first\nsecond"))
	assert.Contains(t, out, "1 first")
	assert.Contains(t, out, "2 second")
}

func TestEditPane_ViewScrollsToCaret(t *testing.T) {
	p := NewEditPane()
	p.SetSize(40, 2)

	buf := "l1\nl2\nl3\nl4"
	p.SetSelection(editor.Selection{Start: len(buf), End: len(buf)})

	out := tuitest.StripANSI(p.View(buf))
	assert.Contains(t, out, "l4")
	assert.NotContains(t, out, "l1")
}

func TestEditPane_Surface(t *testing.T) {
	var _ editor.Surface = NewEditPane()

	p := NewEditPane()
	p.Blur()
	assert.False(t, p.Focused())
	p.Focus()
	assert.True(t, p.Focused())
}
