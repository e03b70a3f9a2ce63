package buildcfg

import (
	"testing"
)

func TestFlavorMetadata(t *testing.T) {
	tests := []struct {
		f       Flavor
		pkg     string
		version string
	}{
		{UnixODBC, "unixODBC", "2.3.12"},
		{IODBC, "iODBC", "3.52.16"},
	}
	for _, tt := range tests {
		if got := tt.f.Package(); got != tt.pkg {
			t.Errorf("expected package %q, got %q", tt.pkg, got)
		}
		if got := tt.f.Version(); got != tt.version {
			t.Errorf("expected version %q, got %q", tt.version, got)
		}
	}
}

func TestParseFlavor(t *testing.T) {
	tests := []struct {
		input string
		want  Flavor
		ok    bool
	}{
		{"unixodbc", UnixODBC, true},
		{"unixODBC", UnixODBC, true},
		{"iodbc", IODBC, true},
		{"iODBC", IODBC, true},
		{"odbc32", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseFlavor(tt.input)
		if (err == nil) != tt.ok {
			t.Errorf("ParseFlavor(%q): unexpected error state: %v", tt.input, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseFlavor(%q): expected %v, got %v", tt.input, tt.want, got)
		}
	}
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level LogLevel
		value int
		name  string
	}{
		{LogCritical, 0, "LOG_CRITICAL"},
		{LogError, 1, "LOG_ERROR"},
		{LogWarning, 2, "LOG_WARNING"},
		{LogInfo, 3, "LOG_INFO"},
		{LogDebug, 4, "LOG_DEBUG"},
	}
	for _, tt := range tests {
		if int(tt.level) != tt.value {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.value, int(tt.level))
		}
		if tt.level.String() != tt.name {
			t.Errorf("expected %q, got %q", tt.name, tt.level.String())
		}
	}
}

func TestDefinesUnixODBC(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"HAVE_CONFIG_H", ""},
		{"UNIXODBC_SOURCE", ""},
		{"HAVE_DLFCN_H", "1"},
		{"HAVE_LOCALTIME_R", "1"},
		{"HAVE_LIBDL", "1"},
		{"PACKAGE", `"unixODBC"`},
		{"VERSION", `"2.3.12"`},
		{"DISABLE_LTDL", "1"},
		{"INI_SUCCESS", "0"},
		{"INI_ERROR", "1"},
		{"LOG_CRITICAL", "0"},
		{"LOG_DEBUG", "4"},
	}
	for _, tt := range tests {
		got, ok := Lookup(UnixODBC, tt.name)
		if !ok {
			t.Errorf("%s: not defined", tt.name)
			continue
		}
		if got != tt.value {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.value, got)
		}
	}
}

func TestDefinesIODBC(t *testing.T) {
	for _, name := range []string{"UNIXODBC_SOURCE", "DISABLE_LTDL", "INI_SUCCESS", "LOG_DEBUG"} {
		if _, ok := Lookup(IODBC, name); ok {
			t.Errorf("%s: unexpectedly defined for iODBC", name)
		}
	}
	if got, _ := Lookup(IODBC, "PACKAGE"); got != `"iODBC"` {
		t.Errorf("expected iODBC package, got %s", got)
	}
}

func TestDefinesSystemPaths(t *testing.T) {
	got, ok := Lookup(UnixODBC, "SYSTEM_FILE_PATH")
	if ok != hasSystemPaths {
		t.Fatalf("SYSTEM_FILE_PATH defined=%t, expected %t", ok, hasSystemPaths)
	}
	if ok && got != `"/etc"` {
		t.Errorf("expected \"/etc\", got %s", got)
	}
}

func TestDefinesUnique(t *testing.T) {
	for _, f := range []Flavor{UnixODBC, IODBC} {
		seen := make(map[string]bool)
		for _, d := range Defines(f) {
			if seen[d.Name] {
				t.Errorf("%v: %s defined twice", f, d.Name)
			}
			seen[d.Name] = true
		}
	}
}

func TestDefineString(t *testing.T) {
	tests := []struct {
		d    Define
		want string
	}{
		{Define{Name: "HAVE_CONFIG_H"}, "-DHAVE_CONFIG_H"},
		{Define{Name: "HAVE_LIBDL", Value: "1"}, "-DHAVE_LIBDL=1"},
		{Define{Name: "PACKAGE", Value: `"unixODBC"`}, `-DPACKAGE="unixODBC"`},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
