//go:build windows

package ltdl

import (
	"errors"

	"golang.org/x/sys/windows"
)

// OpenFlags is zero on Windows. LoadLibrary resolves imports at load
// time and every loaded module is visible process wide.
const OpenFlags = 0

type nativeLoader = winLoader

// winLoader is the kernel32 loader.
type winLoader struct{}

var _ Loader = winLoader{}

func (winLoader) Open(path string) (Handle, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		kind := ModuleNotFound
		if errors.Is(err, windows.ERROR_PROC_NOT_FOUND) {
			kind = LinkFailure
		}
		return 0, fail("open", path, kind, err)
	}
	return Handle(h), nil
}

func (winLoader) Sym(h Handle, name string) (uintptr, error) {
	addr, err := windows.GetProcAddress(windows.Handle(h), name)
	if err != nil {
		return 0, fail("sym", name, SymbolNotFound, err)
	}
	return addr, nil
}

func (winLoader) Close(h Handle) error {
	if err := windows.FreeLibrary(windows.Handle(h)); err != nil {
		return fail("close", "", UnloadFailure, err)
	}
	return nil
}
