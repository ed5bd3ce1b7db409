package editor

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPickerSurface struct {
	shown []PendingPickerRequest
}

func (r *recordingPickerSurface) ShowPicker(req PendingPickerRequest) {
	r.shown = append(r.shown, req)
}

func TestPickerCoordinator_LinkResolves(t *testing.T) {
	surface := &recordingPickerSurface{}
	pc := NewPickerCoordinator(surface, zerolog.Nop())

	require.NoError(t, pc.OpenLink(Caret(1)))
	assert.Equal(t, StateAwaitingLink, pc.State())
	require.Len(t, surface.shown, 1)
	assert.Equal(t, PendingPickerRequest{Kind: PickerLink, Captured: Caret(1)}, surface.shown[0])

	edit, ok, err := pc.Resolve("A", Chosen("https://x.com", "x"))
	require.NoError(t, err)
	require.True(t, ok)

	want := `A<a href="https://x.com" target="_blank" rel="noopener noreferrer">x</a>`
	assert.Equal(t, want, edit.Buffer)
	assert.Equal(t, Caret(len(want)), edit.Selection)
	assert.Equal(t, StateIdle, pc.State())
}

func TestPickerCoordinator_MediaResolves(t *testing.T) {
	pc := NewPickerCoordinator(nil, zerolog.Nop())

	require.NoError(t, pc.OpenMedia(Caret(0)))
	assert.Equal(t, StateAwaitingMedia, pc.State())

	edit, ok, err := pc.Resolve("texto", Chosen("/uploads/escola.png", "Escola"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `<img src="/uploads/escola.png" alt="Escola" />texto`, edit.Buffer)
	assert.Equal(t, Caret(len(`<img src="/uploads/escola.png" alt="Escola" />`)), edit.Selection)
}

func TestPickerCoordinator_CancelIsNoop(t *testing.T) {
	pc := NewPickerCoordinator(nil, zerolog.Nop())

	require.NoError(t, pc.OpenLink(Caret(1)))
	edit, ok, err := pc.Resolve("A", Cancelled())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, Edit{}, edit)
	assert.Equal(t, StateIdle, pc.State())

	_, pending := pc.Pending()
	assert.False(t, pending)
}

func TestPickerCoordinator_OnlyOnePending(t *testing.T) {
	pc := NewPickerCoordinator(nil, zerolog.Nop())

	require.NoError(t, pc.OpenLink(Caret(0)))
	err := pc.OpenMedia(Caret(0))
	require.ErrorIs(t, err, ErrPickerBusy)

	req, ok := pc.Pending()
	require.True(t, ok)
	assert.Equal(t, PickerLink, req.Kind)
}

func TestPickerCoordinator_ResolveWithoutOpen(t *testing.T) {
	pc := NewPickerCoordinator(nil, zerolog.Nop())

	_, _, err := pc.Resolve("A", Chosen("https://x.com", "x"))
	require.ErrorIs(t, err, ErrNoPendingPicker)
}

func TestPickerCoordinator_StaleOffsetClamped(t *testing.T) {
	pc := NewPickerCoordinator(nil, zerolog.Nop())

	require.NoError(t, pc.OpenLink(Caret(40)))
	edit, ok, err := pc.Resolve("short", Chosen("https://x.com", "x"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `short<a href="https://x.com" target="_blank" rel="noopener noreferrer">x</a>`, edit.Buffer)
	assert.Equal(t, Caret(len(edit.Buffer)), edit.Selection)
}

func TestPickerCoordinator_InvalidKind(t *testing.T) {
	pc := NewPickerCoordinator(nil, zerolog.Nop())
	require.Error(t, pc.Open(PickerNone, Caret(0)))
	assert.False(t, pc.Busy())
}

func TestPickerKind_String(t *testing.T) {
	assert.Equal(t, "link", PickerLink.String())
	assert.Equal(t, "media", PickerMedia.String())
	assert.Equal(t, "none", PickerNone.String())
	assert.Equal(t, "awaiting-link", StateAwaitingLink.String())
}

func TestPickerKind_UnmarshalText(t *testing.T) {
	for _, k := range []PickerKind{PickerNone, PickerLink, PickerMedia} {
		b, err := k.MarshalText()
		require.NoError(t, err)

		var got PickerKind
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, k, got)
	}

	var k PickerKind
	assert.Error(t, k.UnmarshalText([]byte("video")))
}
