// Package render turns an editor buffer into display output.
//
// Renderers receive the buffer unmodified. Nothing here escapes or sanitizes
// markup: raw HTML in the buffer reaches the output as-is, so buffers from
// untrusted sources must not be rendered into a trusted page.
package render

// Renderer converts a buffer into display output.
type Renderer interface {
	Render(buf string) (string, error)
}

// Func adapts a function to Renderer.
type Func func(buf string) (string, error)

func (f Func) Render(buf string) (string, error) { return f(buf) }
