package ltdl

const (
	testLibrary = "/usr/lib/libSystem.B.dylib"
	testSymbol  = "strlen"
	testExt     = ".dylib"
)
