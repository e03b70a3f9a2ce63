//go:build !linux && !darwin && !windows

package buildcfg

// No shared library suffix is known for this target.
var _ = buildcfg_supports_only_linux_darwin_and_windows
