package ltdl

// The C library stands in for a driver module: the tests need a module
// that is present everywhere, and building one requires cgo. Set
// LTDL_TEST_DRIVER to a real ODBC driver to exercise SQLDriverConnect.
const (
	testLibrary = "libc.so.6"
	testSymbol  = "strlen"
	testExt     = ".so"
)
