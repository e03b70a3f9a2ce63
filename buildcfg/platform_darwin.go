package buildcfg

const (
	SharedLibExt  = ".dylib"
	OS            = MacOS
	PlatformLinux = false
	PlatformMacOS = true
)

// Default search and configuration paths.
const (
	DefLibPath        = "/usr/lib:/usr/local/lib"
	SystemFilePath    = "/etc"
	OdbcinstSystemIni = "odbcinst.ini"
	OdbcSystemIni     = "odbc.ini"
	hasSystemPaths    = true
)
