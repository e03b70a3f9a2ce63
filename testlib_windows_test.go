package ltdl

const (
	testLibrary = "kernel32.dll"
	testSymbol  = "GetTickCount"
	testExt     = ".dll"
)
