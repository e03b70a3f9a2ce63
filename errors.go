package ltdl

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a loader failure as finely as the native loader
// allows.
type Kind int

const (
	// ModuleNotFound means the module could not be located or mapped.
	ModuleNotFound Kind = iota + 1
	// LinkFailure means the module was found but its dependencies or
	// relocations could not be resolved.
	LinkFailure
	// SymbolNotFound means a symbol lookup failed.
	SymbolNotFound
	// UnloadFailure means the native loader refused to unload a module.
	UnloadFailure
)

func (k Kind) String() string {
	switch k {
	case ModuleNotFound:
		return "module not found"
	case LinkFailure:
		return "link failure"
	case SymbolNotFound:
		return "symbol not found"
	case UnloadFailure:
		return "unload failure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinel errors for use with errors.Is.
var (
	ErrModuleNotFound = &Error{Kind: ModuleNotFound}
	ErrLinkFailure    = &Error{Kind: LinkFailure}
	ErrSymbolNotFound = &Error{Kind: SymbolNotFound}
	ErrUnloadFailure  = &Error{Kind: UnloadFailure}
)

// Error is a loader failure. Err is the native loader's error, unmodified.
type Error struct {
	Op   string // "open", "sym" or "close"
	Name string // module path or symbol name
	Kind Kind
	Err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err == nil {
		return "ltdl: " + e.Kind.String()
	}
	if e.Name == "" {
		return fmt.Sprintf("ltdl: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("ltdl: %s %s: %v", e.Op, e.Name, e.Err)
}

// Unwrap returns the native error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// fail builds the error for a failed operation and records the native
// message as the last error.
func fail(op, name string, kind Kind, err error) error {
	if err == nil {
		err = errors.New(kind.String())
	}
	setLastError(err.Error())
	return &Error{Op: op, Name: name, Kind: kind, Err: err}
}

// classifyOpenMessage distinguishes a missing module from one that was
// found but failed to link, using the only information dlerror gives.
func classifyOpenMessage(msg string) Kind {
	m := strings.ToLower(msg)
	if strings.Contains(m, "undefined symbol") || strings.Contains(m, "symbol not found") {
		return LinkFailure
	}
	return ModuleNotFound
}
