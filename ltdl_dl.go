//go:build darwin || linux

package ltdl

import (
	"github.com/ebitengine/purego"
)

// OpenFlags is the mode passed to dlopen: defer symbol resolution until
// first use and make the module's symbols available to modules loaded
// after it.
const OpenFlags = purego.RTLD_LAZY | purego.RTLD_GLOBAL

type nativeLoader = dlLoader

// dlLoader is the dlfcn loader.
type dlLoader struct{}

var _ Loader = dlLoader{}

func (dlLoader) Open(path string) (Handle, error) {
	h, err := purego.Dlopen(path, OpenFlags)
	if err != nil {
		return 0, fail("open", path, classifyOpenMessage(err.Error()), err)
	}
	return Handle(h), nil
}

func (dlLoader) Sym(h Handle, name string) (uintptr, error) {
	addr, err := purego.Dlsym(uintptr(h), name)
	if err != nil {
		return 0, fail("sym", name, SymbolNotFound, err)
	}
	return addr, nil
}

func (dlLoader) Close(h Handle) error {
	if err := purego.Dlclose(uintptr(h)); err != nil {
		return fail("close", "", UnloadFailure, err)
	}
	return nil
}
