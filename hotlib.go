package hotlib

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/ZenLiuCN/fn"
	"github.com/ebitengine/purego"
	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
)

type (
	//FileNamer maps a logical module name to its platform artifact file name.
	FileNamer func(name string) string

	//Handle is an opaque reference to one loaded code image, this interface can be implemented
	//outside this package only for testing against a stand-in platform loader.
	//
	//Note:
	//
	//	1. A Handle is exclusively owned by one Library generation.
	//	2. Close releases the code image, no symbol of it may be used afterwards.
	Handle interface {
		Lookup(symbol string) (uintptr, error) //resolve an exported symbol by name
		Close() error                          //release the code image
	}

	//Opener loads a code image from a file on disk. The production Opener is [System],
	//anything else exists to keep the reload algorithm platform-agnostic.
	Opener interface {
		Open(path string) (Handle, error)
	}

	/*Library is a hot-reloadable native module.

	Use Steps:

	1. Open to perform the mandatory initial load.
	2. Poll NeedsReload once per tick, call Reload when it reports true.
	3. Forward calls through Func, Sym or MustSym every tick.
	4. Call [Library.Close] on host shutdown.

	Note:

	1. Library is single-threaded by design, the host drives it cooperatively.
	2. Reload never invalidates the module a caller currently holds symbols of,
	   the swap is whole-value and the old image is released after it.
	*/
	Library struct {
		dir  string
		name string

		opener Opener
		namer  FileNamer
		log    zerolog.Logger

		current *module
	}

	//module is one successfully loaded generation. It is replaced wholesale on
	//reload, never mutated in place.
	module struct {
		handle     Handle
		modTime    time.Time
		generation uint64
	}

	//Option configures a Library during Open.
	Option func(*Library)
)

// WithOpener replaces the platform loader, mainly for tests.
func WithOpener(o Opener) Option {
	return func(l *Library) { l.opener = o }
}

// WithFileNamer replaces the platform artifact naming rule.
func WithFileNamer(n FileNamer) Option {
	return func(l *Library) { l.namer = n }
}

// WithLogger installs a logger, default is a no-op one.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Library) { l.log = log }
}

// Open loads generation 0 of the module named by dir and name. There is no
// previous generation to fall back to here, any failure is returned and must
// be treated as fatal by the host.
func Open(dir, name string, opts ...Option) (l *Library, err error) {
	l = &Library{
		dir:    dir,
		name:   name,
		opener: System(),
		namer:  PlatformFileNamer(runtime.GOOS),
		log:    zerolog.Nop(),
	}
	for _, o := range opts {
		o(l)
	}
	if l.current, err = l.load(0); err != nil {
		return nil, fmt.Errorf("initial load of %s: %w", l.ArtifactPath(), err)
	}
	l.log.Info().Str("artifact", l.ArtifactPath()).Msg("module loaded")
	return
}

// ArtifactPath is the source artifact location, owned by the external build
// process and only ever read by the Library.
func (l *Library) ArtifactPath() string {
	return filepath.Join(l.dir, l.namer(l.name))
}

// Generation identifies the currently live module version.
func (l *Library) Generation() uint64 {
	return l.current.generation
}

// ModTime is the source artifact timestamp as of the last successful load.
func (l *Library) ModTime() time.Time {
	return l.current.modTime
}

func (l *Library) copyDir() string {
	return filepath.Join(l.dir, "libcopies")
}

func (l *Library) copyPath(generation uint64) string {
	return filepath.Join(l.copyDir(), l.namer(l.name+strconv.FormatUint(generation, 10)))
}

// NeedsReload reports whether the source artifact changed since the last
// successful load. Pure query: it never mutates the Library, so it stays
// true over repeated calls until a Reload succeeds.
func (l *Library) NeedsReload() bool {
	fi, err := os.Stat(l.ArtifactPath())
	if err != nil {
		return false
	}
	return fi.ModTime().After(l.current.modTime)
}

// Reload attempts a staged load of the next generation and reports whether a
// new generation went live. Every failure mode here is the expected
// build-in-progress condition: the current module stays untouched, the
// timestamp is not advanced and the next tick retries.
func (l *Library) Reload() bool {
	next, err := l.load(l.current.generation + 1)
	if err != nil {
		l.log.Debug().Err(err).Str("artifact", l.ArtifactPath()).
			Msg("reload skipped, keeping current generation")
		return false
	}
	old := l.current
	l.current = next
	if err = old.handle.Close(); err != nil {
		l.log.Debug().Err(err).Uint64("generation", old.generation).
			Msg("release of previous generation failed")
	}
	l.log.Info().Uint64("generation", next.generation).Msg("module reloaded")
	return true
}

// load stages a private copy of the source artifact under libcopies with the
// generation number baked into the file name and loads that copy. Loading the
// source directly would let the platform loader lock it and permanently break
// the external rebuild on platforms that lock mapped files.
func (l *Library) load(generation uint64) (m *module, err error) {
	src := l.ArtifactPath()
	lock := flock.New(LockPath(src))
	defer fn.IgnoreClose(lock)()
	var held bool
	if held, err = lock.TryRLock(); err != nil {
		return
	}
	if !held {
		return nil, ErrArtifactBusy
	}
	var fi os.FileInfo
	if fi, err = os.Stat(src); err != nil {
		return
	}
	if err = os.MkdirAll(l.copyDir(), 0o755); err != nil {
		return
	}
	dst := l.copyPath(generation)
	if err = CopyFile(src, dst, fi); err != nil {
		return
	}
	var h Handle
	if h, err = l.opener.Open(dst); err != nil {
		return
	}
	// The timestamp was observed before the copy, so a rewrite racing the
	// copy still flags NeedsReload on the next tick.
	return &module{handle: h, modTime: fi.ModTime(), generation: generation}, nil
}

// Sym resolves an exported symbol against the current generation. Use it for
// optional extension entry points only.
func (l *Library) Sym(symbol string) (u uintptr, ok bool) {
	u, err := l.current.handle.Lookup(symbol)
	if err != nil {
		return 0, false
	}
	return u, true
}

// MustSym resolves a required symbol against the current generation and
// panics wrapping ErrMissingSymbol when the module does not export it. A
// module missing a required entry point has no degraded mode.
func (l *Library) MustSym(symbol string) uintptr {
	u, err := l.current.handle.Lookup(symbol)
	if err != nil {
		panic(fmt.Errorf("%w: %s", ErrMissingSymbol, symbol))
	}
	return u
}

// Func resolves symbol against the current generation and binds it to the
// caller supplied function type T. The signature is an unchecked platform
// contract: T must match the exported signature exactly, for every
// generation, or the call is undefined behavior. Bind at the call site each
// tick, a bound value must not outlive the generation it was resolved from.
func Func[T any](l *Library, symbol string) (f T) {
	purego.RegisterFunc(&f, l.MustSym(symbol))
	return
}

// Close releases the current code image. The Library must not be used
// afterwards.
func (l *Library) Close() error {
	if l.current == nil {
		return nil
	}
	h := l.current.handle
	l.current = nil
	return h.Close()
}

// LockPath is the advisory build-lock location for an artifact. The external
// builder holds it exclusively while rewriting the artifact, load takes it
// shared before staging a copy.
func LockPath(artifact string) string {
	return artifact + ".lock"
}
