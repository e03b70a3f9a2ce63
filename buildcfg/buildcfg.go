// Package buildcfg holds the constants the ODBC driver manager sources
// expect from a configure-generated config.h. Platform dependent values
// are selected by build constraints; nothing here is computed at run time.
//
// Only linux, darwin and windows targets are supported. Building for any
// other GOOS fails.
package buildcfg

import "unsafe"

// SizeofLongInt is the pointer-width class of the target: 8 on 64-bit
// data models, 4 otherwise.
const SizeofLongInt = int(unsafe.Sizeof(uintptr(0)))

// Boolean values for the C sources.
const (
	True  = 1
	False = 0
)

// Family is the operating system family of the build target.
type Family int

const (
	Linux Family = iota + 1
	MacOS
	WindowsOrOther
)

func (f Family) String() string {
	switch f {
	case Linux:
		return "linux"
	case MacOS:
		return "macos"
	case WindowsOrOther:
		return "windows"
	default:
		return "unknown"
	}
}

// Platform is the capability set resolved for the build target.
type Platform struct {
	SizeofLongInt int
	SharedLibExt  string
	OS            Family
}

// Capabilities returns the capability set of the build target.
func Capabilities() Platform {
	return Platform{
		SizeofLongInt: SizeofLongInt,
		SharedLibExt:  SharedLibExt,
		OS:            OS,
	}
}

// LibraryName returns the file name of the shared library base on the
// build target, e.g. "libodbc" becomes "libodbc.so" on Linux.
func LibraryName(base string) string {
	return base + SharedLibExt
}
