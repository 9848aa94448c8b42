//go:build darwin || linux || freebsd

package hotlib

import (
	"github.com/ebitengine/purego"
)

// System returns the dlopen based platform loader.
func System() Opener {
	return systemOpener{}
}

type systemOpener struct{}

func (systemOpener) Open(path string) (Handle, error) {
	const rtldLazy = 0x1
	h, err := purego.Dlopen(path, rtldLazy)
	if err != nil {
		return nil, err
	}
	return dlHandle(h), nil
}

type dlHandle uintptr

func (h dlHandle) Lookup(symbol string) (uintptr, error) {
	return purego.Dlsym(uintptr(h), symbol)
}

func (h dlHandle) Close() error {
	return purego.Dlclose(uintptr(h))
}
