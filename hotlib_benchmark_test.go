package hotlib

import (
	"os"
	"path/filepath"
	"testing"
)

func benchLib(b *testing.B) *Library {
	b.Helper()
	dir := b.TempDir()
	if err := os.WriteFile(filepath.Join(dir, testNamer("game")), []byte("module"), 0o644); err != nil {
		b.Fatal(err)
	}
	o := &fakeOpener{syms: map[string]uintptr{"update_and_draw": 0x10}}
	l, err := Open(dir, "game", WithOpener(o), WithFileNamer(testNamer))
	if err != nil {
		b.Fatal(err)
	}
	return l
}

func BenchmarkNeedsReload(b *testing.B) {
	l := benchLib(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.NeedsReload()
	}
}

func BenchmarkMustSym(b *testing.B) {
	l := benchLib(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.MustSym("update_and_draw")
	}
}
