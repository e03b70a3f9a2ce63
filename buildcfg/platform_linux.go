package buildcfg

const (
	SharedLibExt  = ".so"
	OS            = Linux
	PlatformLinux = true
	PlatformMacOS = false
)

// Default search and configuration paths.
const (
	DefLibPath        = "/usr/lib:/usr/local/lib"
	SystemFilePath    = "/etc"
	OdbcinstSystemIni = "odbcinst.ini"
	OdbcSystemIni     = "odbc.ini"
	hasSystemPaths    = true
)
