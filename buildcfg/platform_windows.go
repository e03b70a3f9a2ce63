package buildcfg

const (
	SharedLibExt  = ".dll"
	OS            = WindowsOrOther
	PlatformLinux = false
	PlatformMacOS = false
)

// The Windows build does not define system paths; the driver manager
// reads its configuration from the registry.
const (
	DefLibPath        = ""
	SystemFilePath    = ""
	OdbcinstSystemIni = "odbcinst.ini"
	OdbcSystemIni     = "odbc.ini"
	hasSystemPaths    = false
)
