// Package confgen writes the headers a vendored driver manager needs to
// compile without autotools or libltdl: a minimal config.h and an ltdl.h
// stub that maps the lt_dl* calls onto dlfcn.
package confgen

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/spf13/afero"

	"github.com/slingdata-io/ltdl/buildcfg"
)

const (
	ConfigHeaderName = "config.h"
	LoaderHeaderName = "ltdl.h"
)

var configTmpl = template.Must(template.New(ConfigHeaderName).Parse(`/* Minimal config.h for {{.Package}} static compilation */
#ifndef _CONFIG_H
#define _CONFIG_H

/* Define standard headers */
{{range .Headers}}#define {{.}} 1
{{end}}
/* Define standard functions */
{{range .Functions}}#define {{.}} 1
{{end}}
/* Type sizes */
#if defined(__LP64__) || defined(_WIN64)
#define SIZEOF_LONG_INT 8
#else
#define SIZEOF_LONG_INT 4
#endif

/* Threading support */
#define HAVE_LIBPTHREAD 1

/* Dynamic loading */
#define HAVE_LIBDL 1

/* Package info */
#define PACKAGE "{{.Package}}"
#define VERSION "{{.Version}}"

/* Platform detection */
#ifdef __linux__
#define PLATFORM_LINUX 1
#define SHLIBEXT ".so"
#endif

#ifdef __APPLE__
#define PLATFORM_MACOS 1
#define SHLIBEXT ".dylib"
#endif

#ifdef _WIN32
#define SHLIBEXT ".dll"
#endif

/* Common boolean values */
#ifndef TRUE
#define TRUE {{.True}}
#endif

#ifndef FALSE
#define FALSE {{.False}}
#endif

/* ODBC settings */
#define ENABLE_UNICODE_SUPPORT 1
#define SQL_WCHART_CONVERT 1
{{if .DisableLTDL}}
/* Disable ltdl usage - use dlopen directly */
#define DISABLE_LTDL 1
{{end}}
/* Default system file paths */
#define SYSTEM_FILE_PATH "{{.SystemFilePath}}"
#define ODBCINST_SYSTEM_INI "{{.OdbcinstSystemIni}}"
#define ODBC_SYSTEM_INI "{{.OdbcSystemIni}}"

#endif /* _CONFIG_H */
`))

const loaderHeader = `/* ltdl.h stub mapping libltdl onto dlopen/dlsym */
#ifndef _LTDL_H
#define _LTDL_H

#include <dlfcn.h>

typedef void* lt_dlhandle;

#define lt_dlopen(filename) dlopen(filename, RTLD_LAZY | RTLD_GLOBAL)
#define lt_dlsym(handle, symbol) dlsym(handle, symbol)
#define lt_dlclose(handle) dlclose(handle)
#define lt_dlerror() dlerror()
#define lt_dlinit() 0
#define lt_dlexit() 0
#define lt_dlsetsearchpath(path) 0

#define LTDL_SET_PRELOADED_SYMBOLS()

#endif /* _LTDL_H */
`

type configData struct {
	Package           string
	Version           string
	Headers           []string
	Functions         []string
	True, False       int
	DisableLTDL       bool
	SystemFilePath    string
	OdbcinstSystemIni string
	OdbcSystemIni     string
}

// ConfigHeader renders config.h for f.
func ConfigHeader(f buildcfg.Flavor) []byte {
	sysPath := buildcfg.SystemFilePath
	if sysPath == "" {
		sysPath = "/etc"
	}
	var buf bytes.Buffer
	err := configTmpl.Execute(&buf, configData{
		Package:           f.Package(),
		Version:           f.Version(),
		Headers:           buildcfg.Headers,
		Functions:         buildcfg.Functions,
		True:              buildcfg.True,
		False:             buildcfg.False,
		DisableLTDL:       f == buildcfg.UnixODBC,
		SystemFilePath:    sysPath,
		OdbcinstSystemIni: buildcfg.OdbcinstSystemIni,
		OdbcSystemIni:     buildcfg.OdbcSystemIni,
	})
	if err != nil {
		// The template and its data are fixed.
		panic(err)
	}
	return buf.Bytes()
}

// LoaderHeader returns the ltdl.h stub.
func LoaderHeader() []byte {
	return []byte(loaderHeader)
}

// Ensure writes config.h for f into dir unless one already exists. It
// reports whether the file was written.
func Ensure(fs afero.Fs, dir string, f buildcfg.Flavor) (bool, error) {
	path := filepath.Join(dir, ConfigHeaderName)
	ok, err := afero.Exists(fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}
	if ok {
		return false, nil
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if err := afero.WriteFile(fs, path, ConfigHeader(f), 0o644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}

// WriteLoaderStub writes ltdl.h into dir, replacing any existing file.
func WriteLoaderStub(fs afero.Fs, dir string) error {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	path := filepath.Join(dir, LoaderHeaderName)
	if err := afero.WriteFile(fs, path, LoaderHeader(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Configure prepares dir for compiling f: config.h when absent and, for
// unixODBC, the ltdl.h stub. It returns the paths written.
func Configure(fs afero.Fs, dir string, f buildcfg.Flavor) ([]string, error) {
	var written []string
	ok, err := Ensure(fs, dir, f)
	if err != nil {
		return nil, err
	}
	if ok {
		written = append(written, filepath.Join(dir, ConfigHeaderName))
	}
	if f == buildcfg.UnixODBC {
		if err := WriteLoaderStub(fs, dir); err != nil {
			return written, err
		}
		written = append(written, filepath.Join(dir, LoaderHeaderName))
	}
	return written, nil
}
