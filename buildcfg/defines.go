package buildcfg

import (
	"fmt"
	"strconv"
)

// Flavor selects which driver manager is being built.
type Flavor int

const (
	UnixODBC Flavor = iota
	IODBC
)

// ParseFlavor parses a flavor name as accepted on the command line.
func ParseFlavor(s string) (Flavor, error) {
	switch s {
	case "unixodbc", "unixODBC":
		return UnixODBC, nil
	case "iodbc", "iODBC":
		return IODBC, nil
	}
	return 0, fmt.Errorf("unknown driver manager flavor %q", s)
}

// Package returns the PACKAGE string of the flavor.
func (f Flavor) Package() string {
	if f == IODBC {
		return "iODBC"
	}
	return "unixODBC"
}

// Version returns the VERSION string of the flavor.
func (f Flavor) Version() string {
	if f == IODBC {
		return "3.52.16"
	}
	return "2.3.12"
}

func (f Flavor) String() string { return f.Package() }

// INI library return codes.
const (
	IniSuccess = 0
	IniError   = 1
)

// LogLevel is a driver manager log level.
type LogLevel int

const (
	LogCritical LogLevel = iota
	LogError
	LogWarning
	LogInfo
	LogDebug
)

func (l LogLevel) String() string {
	switch l {
	case LogCritical:
		return "LOG_CRITICAL"
	case LogError:
		return "LOG_ERROR"
	case LogWarning:
		return "LOG_WARNING"
	case LogInfo:
		return "LOG_INFO"
	case LogDebug:
		return "LOG_DEBUG"
	default:
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
}

// Headers lists the HAVE_*_H macros defined for every build.
var Headers = []string{
	"HAVE_STDLIB_H",
	"HAVE_STRING_H",
	"HAVE_UNISTD_H",
	"HAVE_PWD_H",
	"HAVE_SYS_TYPES_H",
	"HAVE_STDARG_H",
	"HAVE_TIME_H",
	"HAVE_ERRNO_H",
	"HAVE_MALLOC_H",
	"HAVE_DLFCN_H",
	"HAVE_CTYPE_H",
	"HAVE_LIMITS_H",
	"HAVE_PTHREAD_H",
	"HAVE_SYS_PARAM_H",
}

// Functions lists the HAVE_* macros for available C library functions.
var Functions = []string{
	"HAVE_LONG_LONG",
	"HAVE_STRTOL",
	"HAVE_STRTOLL",
	"HAVE_ATOLL",
	"HAVE_STRNCASECMP",
	"HAVE_VSNPRINTF",
	"HAVE_SNPRINTF",
	"HAVE_STRCASECMP",
	"HAVE_STRDUP",
	"HAVE_SETLOCALE",
	"HAVE_MEMSET",
	"HAVE_MEMCPY",
	"HAVE_PUTENV",
	"HAVE_STRERROR",
	"HAVE_LOCALTIME_R",
}

// Define is a single preprocessor definition. An empty Value defines
// the name without a value.
type Define struct {
	Name  string
	Value string
}

func (d Define) String() string {
	if d.Value == "" {
		return "-D" + d.Name
	}
	return "-D" + d.Name + "=" + d.Value
}

func quote(s string) string { return strconv.Quote(s) }

// Defines returns the preprocessor definitions passed to the C compiler
// when building f, in order.
func Defines(f Flavor) []Define {
	defs := []Define{{Name: "HAVE_CONFIG_H"}}
	if f == UnixODBC {
		defs = append(defs, Define{Name: "UNIXODBC_SOURCE"})
	}
	for _, h := range Headers {
		defs = append(defs, Define{h, "1"})
	}
	for _, fn := range Functions {
		defs = append(defs, Define{fn, "1"})
	}
	defs = append(defs,
		Define{"HAVE_LIBPTHREAD", "1"},
		Define{"HAVE_LIBDL", "1"},
		Define{"PACKAGE", quote(f.Package())},
		Define{"VERSION", quote(f.Version())},
		Define{"ENABLE_UNICODE_SUPPORT", "1"},
		Define{"SQL_WCHART_CONVERT", "1"},
	)
	if f == UnixODBC {
		defs = append(defs,
			Define{"DISABLE_LTDL", "1"},
			Define{"INI_SUCCESS", strconv.Itoa(IniSuccess)},
			Define{"INI_ERROR", strconv.Itoa(IniError)},
		)
		for l := LogCritical; l <= LogDebug; l++ {
			defs = append(defs, Define{l.String(), strconv.Itoa(int(l))})
		}
	}
	if hasSystemPaths {
		defs = append(defs,
			Define{"DEFLIB_PATH", quote(DefLibPath)},
			Define{"SYSTEM_FILE_PATH", quote(SystemFilePath)},
			Define{"ODBCINST_SYSTEM_INI", quote(OdbcinstSystemIni)},
			Define{"ODBC_SYSTEM_INI", quote(OdbcSystemIni)},
		)
	}
	return defs
}

// Lookup returns the value of the named definition for f.
func Lookup(f Flavor, name string) (string, bool) {
	for _, d := range Defines(f) {
		if d.Name == name {
			return d.Value, true
		}
	}
	return "", false
}
