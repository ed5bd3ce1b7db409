// Package utils holds small helpers shared by commands.
package utils

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// DeferredWriter holds output produced while a full-screen program owns the
// terminal and releases it with Flush once the program exits. Safe for
// concurrent use.
type DeferredWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write stores p until the next Flush.
func (d *DeferredWriter) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Write(p)
}

// Printf formats a line and stores it, appending a newline if missing.
func (d *DeferredWriter) Printf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if len(line) == 0 || line[len(line)-1] != '\n' {
		line += "\n"
	}
	_, _ = d.Write([]byte(line))
}

// Pending reports whether output is waiting to be flushed.
func (d *DeferredWriter) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Len() > 0
}

// Flush writes held output to w and clears it.
func (d *DeferredWriter) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.buf.Len() == 0 {
		return nil
	}

	_, err := d.buf.WriteTo(w)
	return err
}
