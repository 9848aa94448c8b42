package game

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/quadrated/hotlib"
	"github.com/stretchr/testify/require"
)

type stubHandle map[string]uintptr

func (h stubHandle) Lookup(symbol string) (uintptr, error) {
	if u, ok := h[symbol]; ok {
		return u, nil
	}
	return 0, fmt.Errorf("undefined symbol: %s", symbol)
}

func (h stubHandle) Close() error { return nil }

type stubOpener struct{ syms stubHandle }

func (o stubOpener) Open(string) (hotlib.Handle, error) { return o.syms, nil }

func openStub(t *testing.T, syms stubHandle) *hotlib.Library {
	t.Helper()
	dir := t.TempDir()
	namer := hotlib.PlatformFileNamer("linux")
	require.NoError(t, os.WriteFile(filepath.Join(dir, namer("game")), []byte("module"), 0o644))
	l, err := hotlib.Open(dir, "game", hotlib.WithOpener(stubOpener{syms}), hotlib.WithFileNamer(namer))
	require.NoError(t, err)
	return l
}

func TestUpdateAndDrawMissingEntryPointIsFatal(t *testing.T) {
	g := Interface{Lib: openStub(t, stubHandle{})}
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.ErrorIs(t, err, hotlib.ErrMissingSymbol)
	}()
	g.UpdateAndDraw(&Input{}, NewState())
}

func TestProcessAudioEmptyBufferIsNoop(t *testing.T) {
	// no samples requested means the entry point is not even resolved
	g := Interface{Lib: openStub(t, stubHandle{})}
	require.NotPanics(t, func() {
		g.ProcessAudio(&Input{}, NewState(), nil)
	})
}

func TestEntryPointNamesAreFixed(t *testing.T) {
	require.Equal(t, "update_and_draw", SymUpdateAndDraw)
	require.Equal(t, "process_audio", SymProcessAudio)
}

func TestOptionalExtensionSymbols(t *testing.T) {
	l := openStub(t, stubHandle{SymUpdateAndDraw: 0x10, "debug_overlay": 0x30})
	u, ok := l.Sym("debug_overlay")
	require.True(t, ok)
	require.EqualValues(t, 0x30, u)
	_, ok = l.Sym("replay_recorder")
	require.False(t, ok)
}
