package odbc

import (
	"errors"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/slingdata-io/ltdl/buildcfg"
)

// =============================================================================
// Library discovery (odbc.go)
// =============================================================================

func TestLibraryCandidates_Override(t *testing.T) {
	getenv := func(k string) string {
		if k == "GODBC_LIBRARY_PATH" {
			return "/opt/custom/libodbc.so"
		}
		return ""
	}
	got := libraryCandidates(getenv)
	if !reflect.DeepEqual(got, []string{"/opt/custom/libodbc.so"}) {
		t.Errorf("expected override only, got %v", got)
	}
}

func TestLibraryCandidates_Default(t *testing.T) {
	got := libraryCandidates(func(string) string { return "" })
	if len(got) == 0 {
		t.Fatal("expected default candidates")
	}
	for _, c := range got {
		if !strings.Contains(c, buildcfg.SharedLibExt) {
			t.Errorf("candidate %q lacks platform suffix %q", c, buildcfg.SharedLibExt)
		}
	}
	if runtime.GOOS == "windows" && got[0] != "odbc32.dll" {
		t.Errorf("expected odbc32.dll first, got %q", got[0])
	}
	if runtime.GOOS == "linux" && got[0] != "libodbc.so.2" {
		t.Errorf("expected libodbc.so.2 first, got %q", got[0])
	}
}

func TestSymbolName(t *testing.T) {
	tests := []struct {
		name string
		ansi bool
		want string
	}{
		{"SQLAllocHandle", false, "SQLAllocHandle"},
		{"SQLDrivers", true, "SQLDrivers"},
	}
	for _, tt := range tests {
		want := tt.want
		if runtime.GOOS == "windows" && tt.ansi {
			want += "A"
		}
		if got := symbolName(tt.name, tt.ansi); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}

// =============================================================================
// Attribute and string parsing (env.go)
// =============================================================================

func TestParseAttributes(t *testing.T) {
	tests := []struct {
		input    string
		expected map[string]string
	}{
		{"", map[string]string{}},
		{"\x00", map[string]string{}},
		{
			"Driver=/usr/lib/psqlodbcw.so\x00Setup=/usr/lib/libodbcpsqlS.so\x00UsageCount=1\x00\x00",
			map[string]string{
				"Driver":     "/usr/lib/psqlodbcw.so",
				"Setup":      "/usr/lib/libodbcpsqlS.so",
				"UsageCount": "1",
			},
		},
		{"FileUsage\x00", map[string]string{"FileUsage": ""}},
		{"Options=a=b\x00", map[string]string{"Options": "a=b"}},
	}
	for _, tt := range tests {
		got := parseAttributes([]byte(tt.input))
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("input %q: expected %v, got %v", tt.input, tt.expected, got)
		}
	}
}

func TestCString(t *testing.T) {
	buf := []byte("PostgreSQL\x00garbage")
	tests := []struct {
		n        SQLSMALLINT
		expected string
	}{
		{10, "PostgreSQL"},
		{0, ""},
		{-1, ""},
		{100, "PostgreSQL\x00garbag"},
	}
	for _, tt := range tests {
		if got := cString(buf, tt.n); got != tt.expected {
			t.Errorf("n=%d: expected %q, got %q", tt.n, tt.expected, got)
		}
	}
}

// =============================================================================
// Error Tests (errors.go)
// =============================================================================

func TestError(t *testing.T) {
	err := &Error{SQLState: "IM002", NativeError: 0, Message: "Data source name not found"}
	want := "[IM002] Data source name not found (native error: 0)"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if !errors.Is(err, &Error{SQLState: SQLStateDataSourceNotFound}) {
		t.Error("expected errors.Is to match on SQLState")
	}
	if errors.Is(err, &Error{SQLState: SQLStateGeneralError}) {
		t.Error("unexpected match")
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		errs     Errors
		expected string
	}{
		{nil, "unknown ODBC error"},
		{Errors{{SQLState: "HY000", Message: "a"}}, "[HY000] a (native error: 0)"},
		{
			Errors{{SQLState: "01000", Message: "a"}, {SQLState: "IM003", Message: "b", NativeError: 2}},
			"[01000] a (native error: 0); [IM003] b (native error: 2)",
		},
	}
	for _, tt := range tests {
		if got := tt.errs.Error(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}

func TestNewErrorFromRecords(t *testing.T) {
	err := newError(nil)
	var e *Error
	if !errors.As(err, &e) || e.SQLState != SQLStateGeneralError {
		t.Errorf("expected general error, got %v", err)
	}

	err = newError([]DiagRecord{{SQLState: "IM003", Message: "cannot load"}})
	if !errors.As(err, &e) || e.SQLState != "IM003" || e.Message != "cannot load" {
		t.Errorf("unexpected single error: %v", err)
	}

	err = newError([]DiagRecord{{SQLState: "01000"}, {SQLState: "IM004"}})
	var es Errors
	if !errors.As(err, &es) || len(es) != 2 {
		t.Fatalf("expected 2 errors, got %v", err)
	}
}

func TestIsDriverLoadError(t *testing.T) {
	tests := []struct {
		err      error
		expected bool
	}{
		{nil, false},
		{errors.New("plain"), false},
		{&Error{SQLState: SQLStateDriverNotLoaded}, true},
		{&Error{SQLState: SQLStateDriverLoadFailed}, true},
		{&Error{SQLState: SQLStateDataSourceNotFound}, false},
		{Errors{{SQLState: "01000"}, {SQLState: "IM003"}}, true},
		{Errors{{SQLState: "01000"}}, false},
	}
	for _, tt := range tests {
		if got := IsDriverLoadError(tt.err); got != tt.expected {
			t.Errorf("%v: expected %t, got %t", tt.err, tt.expected, got)
		}
	}
}

func TestFormatReturnCode(t *testing.T) {
	tests := []struct {
		ret      SQLRETURN
		expected string
	}{
		{SQL_SUCCESS, "SQL_SUCCESS"},
		{SQL_SUCCESS_WITH_INFO, "SQL_SUCCESS_WITH_INFO"},
		{SQL_ERROR, "SQL_ERROR"},
		{SQL_INVALID_HANDLE, "SQL_INVALID_HANDLE"},
		{SQL_NO_DATA, "SQL_NO_DATA"},
		{SQL_NEED_DATA, "SQL_NEED_DATA"},
		{SQL_STILL_EXECUTING, "SQL_STILL_EXECUTING"},
		{SQLRETURN(42), "SQLRETURN(42)"},
	}
	for _, tt := range tests {
		if got := FormatReturnCode(tt.ret); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}

func TestIsSuccess(t *testing.T) {
	for ret, want := range map[SQLRETURN]bool{
		SQL_SUCCESS:           true,
		SQL_SUCCESS_WITH_INFO: true,
		SQL_ERROR:             false,
		SQL_NO_DATA:           false,
		SQL_INVALID_HANDLE:    false,
	} {
		if got := IsSuccess(ret); got != want {
			t.Errorf("%s: expected %t, got %t", FormatReturnCode(ret), want, got)
		}
	}
}

// =============================================================================
// Integration Tests (require a driver manager)
// =============================================================================

func TestEnvironment(t *testing.T) {
	env, err := NewEnvironment()
	if err != nil {
		t.Skipf("driver manager not available: %v", err)
	}
	defer env.Close()

	if _, err := env.Drivers(); err != nil {
		t.Errorf("unexpected error listing drivers: %v", err)
	}
	if _, err := env.DataSources(SQL_FETCH_FIRST); err != nil {
		t.Errorf("unexpected error listing data sources: %v", err)
	}
	if err := env.Close(); err != nil {
		t.Errorf("unexpected error closing: %v", err)
	}
	if err := env.Close(); err != nil {
		t.Errorf("expected second Close to be a no-op, got %v", err)
	}
}
