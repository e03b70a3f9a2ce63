// Package odbc binds the handful of driver-manager entry points needed to
// enumerate installed drivers and data sources. The driver manager
// library is loaded at run time through the ltdl loader.
package odbc

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/slingdata-io/ltdl"
	"github.com/slingdata-io/ltdl/buildcfg"
)

var (
	dmLib    ltdl.Handle
	dmPath   string
	initOnce sync.Once
	initErr  error
)

// Driver manager function pointers - bound by initDM
var (
	sqlAllocHandle func(handleType SQLSMALLINT, inputHandle SQLHANDLE, outputHandle *SQLHANDLE) SQLRETURN
	sqlFreeHandle  func(handleType SQLSMALLINT, handle SQLHANDLE) SQLRETURN
	sqlSetEnvAttr  func(env SQLHENV, attribute SQLINTEGER, value uintptr, stringLength SQLINTEGER) SQLRETURN
	sqlDrivers     func(env SQLHENV, direction SQLUSMALLINT, desc *byte, descMax SQLSMALLINT, descLen *SQLSMALLINT, attr *byte, attrMax SQLSMALLINT, attrLen *SQLSMALLINT) SQLRETURN
	sqlDataSources func(env SQLHENV, direction SQLUSMALLINT, name *byte, nameMax SQLSMALLINT, nameLen *SQLSMALLINT, desc *byte, descMax SQLSMALLINT, descLen *SQLSMALLINT) SQLRETURN
	sqlGetDiagRec  func(handleType SQLSMALLINT, handle SQLHANDLE, recNum SQLSMALLINT, sqlState *byte, nativeError *SQLINTEGER, msgText *byte, bufferLen SQLSMALLINT, textLen *SQLSMALLINT) SQLRETURN
)

// libraryCandidates returns the driver manager libraries to try, in
// order. The GODBC_LIBRARY_PATH environment variable replaces the
// defaults.
func libraryCandidates(getenv func(string) string) []string {
	if path := getenv("GODBC_LIBRARY_PATH"); path != "" {
		return []string{path}
	}

	switch runtime.GOOS {
	case "windows":
		return []string{"odbc32.dll"}
	case "darwin":
		return []string{
			"/opt/homebrew/lib/libodbc.2.dylib", // Apple Silicon Homebrew
			"/usr/local/lib/libodbc.2.dylib",    // Intel Homebrew
			"/opt/homebrew/lib/" + buildcfg.LibraryName("libodbc"),
			"/usr/local/lib/" + buildcfg.LibraryName("libodbc"),
			"libodbc.2.dylib",
			"libiodbc.2.dylib",
		}
	default:
		return []string{
			"libodbc.so.2",
			buildcfg.LibraryName("libodbc"),
			"libiodbc.so.2",
		}
	}
}

// symbolName returns the exported name of an ANSI entry point.
func symbolName(name string, ansi bool) string {
	if runtime.GOOS == "windows" && ansi {
		return name + "A"
	}
	return name
}

// initDM loads the driver manager and binds its entry points.
// If loading fails, set GODBC_LIBRARY_PATH to specify a custom library location.
func initDM() error {
	initOnce.Do(func() {
		candidates := libraryCandidates(os.Getenv)
		var errs []error
		for _, path := range candidates {
			h, err := ltdl.Open(path)
			if err == nil {
				dmLib, dmPath = h, path
				break
			}
			errs = append(errs, err)
		}
		if dmLib == 0 {
			initErr = fmt.Errorf("failed to load ODBC driver manager: %w (set GODBC_LIBRARY_PATH to override)", errors.Join(errs...))
			return
		}

		bindings := []struct {
			fptr any
			name string
			ansi bool
		}{
			{&sqlAllocHandle, "SQLAllocHandle", false},
			{&sqlFreeHandle, "SQLFreeHandle", false},
			{&sqlSetEnvAttr, "SQLSetEnvAttr", false},
			{&sqlDrivers, "SQLDrivers", true},
			{&sqlDataSources, "SQLDataSources", true},
			{&sqlGetDiagRec, "SQLGetDiagRec", true},
		}
		for _, b := range bindings {
			if err := ltdl.RegisterFunc(b.fptr, dmLib, symbolName(b.name, b.ansi)); err != nil {
				initErr = fmt.Errorf("driver manager %q: %w", dmPath, err)
				return
			}
		}
	})
	return initErr
}

// LibraryPath returns the path of the loaded driver manager, loading it
// if necessary.
func LibraryPath() (string, error) {
	if err := initDM(); err != nil {
		return "", err
	}
	return dmPath, nil
}

// AllocHandle allocates an ODBC handle
func AllocHandle(handleType SQLSMALLINT, inputHandle SQLHANDLE, outputHandle *SQLHANDLE) SQLRETURN {
	return sqlAllocHandle(handleType, inputHandle, outputHandle)
}

// FreeHandle frees an ODBC handle
func FreeHandle(handleType SQLSMALLINT, handle SQLHANDLE) SQLRETURN {
	return sqlFreeHandle(handleType, handle)
}

// SetEnvAttr sets an environment attribute
func SetEnvAttr(env SQLHENV, attribute SQLINTEGER, value uintptr, stringLength SQLINTEGER) SQLRETURN {
	return sqlSetEnvAttr(env, attribute, value, stringLength)
}

// Drivers returns the next driver description and its attribute list
func Drivers(env SQLHENV, direction SQLUSMALLINT, desc []byte, attr []byte) (descLen, attrLen SQLSMALLINT, ret SQLRETURN) {
	ret = sqlDrivers(env, direction, &desc[0], SQLSMALLINT(len(desc)), &descLen, &attr[0], SQLSMALLINT(len(attr)), &attrLen)
	return
}

// DataSources returns the next data source name and its driver description
func DataSources(env SQLHENV, direction SQLUSMALLINT, name []byte, desc []byte) (nameLen, descLen SQLSMALLINT, ret SQLRETURN) {
	ret = sqlDataSources(env, direction, &name[0], SQLSMALLINT(len(name)), &nameLen, &desc[0], SQLSMALLINT(len(desc)), &descLen)
	return
}

// GetDiagRec retrieves diagnostic records
func GetDiagRec(handleType SQLSMALLINT, handle SQLHANDLE, recNum SQLSMALLINT, sqlState []byte, message []byte) (nativeError SQLINTEGER, msgLen SQLSMALLINT, ret SQLRETURN) {
	ret = sqlGetDiagRec(handleType, handle, recNum, &sqlState[0], &nativeError, &message[0], SQLSMALLINT(len(message)), &msgLen)
	return
}
