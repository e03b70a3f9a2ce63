// Package ltdl is a small portable dynamic-module interface backed
// directly by the platform loader: dlopen/dlsym/dlclose on Unix-like
// systems and LoadLibrary/GetProcAddress/FreeLibrary on Windows.
//
// It covers the subset of libtool's lt_dl* API that the ODBC driver
// managers actually use. Modules are opened with lazy binding and
// global symbol visibility, so drivers sharing dependent libraries can
// resolve symbols across module boundaries. Library pre-registration
// and custom search paths are not supported; Init, Exit and
// SetSearchPath exist only so callers written against the fuller API
// keep working, and they never do anything.
//
// The package holds no locks. A Handle must be closed exactly once and
// must not be closed while addresses obtained from it are still in use.
package ltdl

import (
	"sync/atomic"

	"github.com/ebitengine/purego"
)

// Handle is an opaque reference to a loaded dynamic module.
// The zero Handle is never returned by a successful Open.
type Handle uintptr

// Loader is the native dynamic-loading facility. Each supported target
// has exactly one implementation, returned by Native.
type Loader interface {
	// Open loads the module at path using the platform's search rules.
	Open(path string) (Handle, error)
	// Sym resolves the address of the named symbol in h.
	Sym(h Handle, name string) (uintptr, error)
	// Close unloads h. On failure h may still be valid.
	Close(h Handle) error
}

var native nativeLoader

// Native returns the loader for the current target.
func Native() Loader { return native }

// Open loads the dynamic module at path. The path is passed to the
// native loader unchanged.
func Open(path string) (Handle, error) {
	return native.Open(path)
}

// Sym returns the address of the symbol name in the module h.
func Sym(h Handle, name string) (uintptr, error) {
	return native.Sym(h, name)
}

// Close unloads the module h.
func Close(h Handle) error {
	return native.Close(h)
}

// RegisterFunc resolves name in h and binds it to the function pointed
// to by fptr. It panics, as purego.RegisterFunc does, if fptr is not a
// pointer to a function with a supported signature.
func RegisterFunc(fptr any, h Handle, name string) error {
	addr, err := native.Sym(h, name)
	if err != nil {
		return err
	}
	purego.RegisterFunc(fptr, addr)
	return nil
}

// lastErr is the single most recent failure message, shared by every
// caller in the process.
var lastErr atomic.Pointer[string]

func setLastError(msg string) {
	lastErr.Store(&msg)
}

// LastError returns a description of the most recent failed Open, Sym or
// Close, and clears it. It returns "" if nothing has failed since the
// previous call. The slot is process wide; concurrent callers may see
// each other's failures.
func LastError() string {
	p := lastErr.Swap(nil)
	if p == nil {
		return ""
	}
	return *p
}

// Init is accepted for compatibility and always succeeds.
// There is no loader state to initialise.
func Init() error { return nil }

// Exit is accepted for compatibility and always succeeds.
// Modules are released only by Close.
func Exit() error { return nil }

// SetSearchPath is accepted for compatibility and always succeeds.
// Custom search paths are not supported; callers resolve module paths
// before calling Open.
func SetSearchPath(path string) error { return nil }

// SetPreloadedSymbols does nothing. Preloaded symbol tables are not
// supported.
func SetPreloadedSymbols() {}
