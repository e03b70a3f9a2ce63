package buildcfg

import (
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSharedLibExt(t *testing.T) {
	tests := map[string]struct {
		ext string
		os  Family
	}{
		"linux":   {".so", Linux},
		"android": {".so", Linux},
		"darwin":  {".dylib", MacOS},
		"ios":     {".dylib", MacOS},
		"windows": {".dll", WindowsOrOther},
	}
	want, ok := tests[runtime.GOOS]
	if !ok {
		t.Fatalf("no expectation for GOOS %s", runtime.GOOS)
	}
	if SharedLibExt != want.ext {
		t.Errorf("expected suffix %q, got %q", want.ext, SharedLibExt)
	}
	if OS != want.os {
		t.Errorf("expected OS %v, got %v", want.os, OS)
	}
	if PlatformLinux != (OS == Linux) {
		t.Errorf("PlatformLinux=%t inconsistent with OS %v", PlatformLinux, OS)
	}
	if PlatformMacOS != (OS == MacOS) {
		t.Errorf("PlatformMacOS=%t inconsistent with OS %v", PlatformMacOS, OS)
	}
}

func TestSizeofLongInt(t *testing.T) {
	width64 := map[string]bool{
		"amd64": true, "arm64": true, "ppc64": true, "ppc64le": true,
		"mips64": true, "mips64le": true, "riscv64": true, "s390x": true,
		"loong64": true, "wasm": true,
		"386": false, "arm": false, "mips": false, "mipsle": false,
	}
	is64, ok := width64[runtime.GOARCH]
	if !ok {
		t.Skipf("no expectation for GOARCH %s", runtime.GOARCH)
	}
	want := 4
	if is64 {
		want = 8
	}
	if SizeofLongInt != want {
		t.Errorf("expected %d, got %d", want, SizeofLongInt)
	}
}

func TestCapabilities(t *testing.T) {
	want := Platform{SizeofLongInt: SizeofLongInt, SharedLibExt: SharedLibExt, OS: OS}
	if diff := cmp.Diff(want, Capabilities()); diff != "" {
		t.Errorf("unexpected capabilities (-want +got):\n%s", diff)
	}
	if Capabilities() != Capabilities() {
		t.Error("expected identical capability sets")
	}
}

func TestLibraryName(t *testing.T) {
	if got, want := LibraryName("libdriverfoo"), "libdriverfoo"+SharedLibExt; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFamilyString(t *testing.T) {
	tests := []struct {
		f    Family
		want string
	}{
		{Linux, "linux"},
		{MacOS, "macos"},
		{WindowsOrOther, "windows"},
		{Family(0), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
