package utils

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeferredWriter_HoldsUntilFlush(t *testing.T) {
	d := &DeferredWriter{}
	assert.False(t, d.Pending())

	n, err := d.Write([]byte("media "))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	d.Printf("library %s", "incomplete")

	assert.True(t, d.Pending())

	var out bytes.Buffer
	require.NoError(t, d.Flush(&out))
	assert.Equal(t, "media library incomplete\n", out.String())
	assert.False(t, d.Pending(), "flush clears held output")
}

func TestDeferredWriter_PrintfKeepsNewline(t *testing.T) {
	d := &DeferredWriter{}
	d.Printf("saved\n")
	d.Printf("")

	var out bytes.Buffer
	require.NoError(t, d.Flush(&out))
	assert.Equal(t, "saved\n\n", out.String())
}

func TestDeferredWriter_FlushEmpty(t *testing.T) {
	d := &DeferredWriter{}

	var out bytes.Buffer
	require.NoError(t, d.Flush(&out))
	assert.Empty(t, out.String())
}

func TestDeferredWriter_ConcurrentWrites(t *testing.T) {
	d := &DeferredWriter{}
	var wg sync.WaitGroup

	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = d.Write([]byte("x"))
		}()
	}
	wg.Wait()

	var out bytes.Buffer
	require.NoError(t, d.Flush(&out))
	assert.Len(t, out.String(), 100)
}
