//go:build windows

package hotlib

import (
	"golang.org/x/sys/windows"
)

// System returns the LoadLibrary based platform loader.
func System() Opener {
	return systemOpener{}
}

type systemOpener struct{}

func (systemOpener) Open(path string) (Handle, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		return nil, err
	}
	return dllHandle(h), nil
}

type dllHandle windows.Handle

func (h dllHandle) Lookup(symbol string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(h), symbol)
}

func (h dllHandle) Close() error {
	return windows.FreeLibrary(windows.Handle(h))
}
