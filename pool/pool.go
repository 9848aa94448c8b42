// Package pool keeps several hot-reloadable libraries behind one registry, for
// hosts that split their logic across more than one module artifact.
package pool

import (
	"errors"
	"sync"

	"github.com/quadrated/hotlib"
)

type Pool struct {
	Libraries map[string]*hotlib.Library
	opts      []hotlib.Option
	sync.RWMutex
}

var (
	ErrAlreadyLoad = errors.New("module already loaded")
	ErrNotLoad     = errors.New("module not loaded")
)

// NewPool create new pool, opts apply to every library it opens.
func NewPool(opts ...hotlib.Option) *Pool {
	p := new(Pool)
	p.Libraries = make(map[string]*hotlib.Library)
	p.opts = opts
	return p
}

// Load opens the library named name under dir. Failure here is fatal to the
// caller the same way a direct Open failure is.
func (p *Pool) Load(dir, name string) (err error) {
	p.Lock()
	defer p.Unlock()
	if _, ok := p.Libraries[name]; ok {
		return ErrAlreadyLoad
	}
	var l *hotlib.Library
	if l, err = hotlib.Open(dir, name, p.opts...); err != nil {
		return
	}
	p.Libraries[name] = l
	return
}

// Get fetch a loaded library by name.
func (p *Pool) Get(name string) (l *hotlib.Library, ok bool) {
	p.RLock()
	defer p.RUnlock()
	l, ok = p.Libraries[name]
	return
}

// Reload forces a reload attempt of one library.
func (p *Pool) Reload(name string) (reloaded bool, err error) {
	p.Lock()
	defer p.Unlock()
	l, ok := p.Libraries[name]
	if !ok {
		return false, ErrNotLoad
	}
	return l.Reload(), nil
}

// ReloadStale sweeps every library whose artifact changed and returns the
// names that went live with a new generation. Libraries mid-rebuild simply
// stay on their previous generation until the next sweep.
func (p *Pool) ReloadStale() (reloaded []string) {
	p.Lock()
	defer p.Unlock()
	for name, l := range p.Libraries {
		if l.NeedsReload() && l.Reload() {
			reloaded = append(reloaded, name)
		}
	}
	return
}

// Require fetch a required symbol from a loaded library, panics when either
// the library or the symbol is missing.
func (p *Pool) Require(name, symbol string) uintptr {
	p.RLock()
	defer p.RUnlock()
	l, ok := p.Libraries[name]
	if !ok {
		panic(ErrNotLoad)
	}
	return l.MustSym(symbol)
}

// Close releases every library. The pool must not be used afterwards.
func (p *Pool) Close() (err error) {
	p.Lock()
	defer p.Unlock()
	for name, l := range p.Libraries {
		if e := l.Close(); e != nil && err == nil {
			err = e
		}
		delete(p.Libraries, name)
	}
	return
}
