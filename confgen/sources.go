package confgen

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/slingdata-io/ltdl/buildcfg"
)

// skipped holds C files in the vendor trees that are programs or
// tests rather than library code.
var skipped = map[string]bool{
	"dltest.c":      true,
	"isql.c":        true,
	"iusql.c":       true,
	"odbcinst.c":    true,
	"odbc-config.c": true,
	"slencheck.c":   true,
}

// SourceDirs returns the directories, relative to the vendor root, whose
// C files make up the driver manager library for f.
func SourceDirs(f buildcfg.Flavor) []string {
	if f == buildcfg.IODBC {
		return []string{"iodbc", "iodbc/trace", "iodbcinst"}
	}
	return []string{"DriverManager", "odbcinst", "ini", "log", "lst"}
}

// IncludeDirs returns the include directories, relative to the vendor
// root, for f. The root itself is last.
func IncludeDirs(f buildcfg.Flavor) []string {
	if f == buildcfg.IODBC {
		return []string{"include", "iodbc", "iodbcinst", "iodbcadm", "."}
	}
	return []string{"include", "DriverManager", "odbcinst", "ini", "log", "lst", "."}
}

// Sources returns the sorted paths of the library C files directly in
// dir. A missing directory has no sources.
func Sources(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".c" {
			continue
		}
		if strings.HasPrefix(name, "test") || skipped[name] {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)
	return files, nil
}

// AllSources returns the library sources of f below root.
func AllSources(fs afero.Fs, root string, f buildcfg.Flavor) ([]string, error) {
	var all []string
	for _, d := range SourceDirs(f) {
		files, err := Sources(fs, filepath.Join(root, filepath.FromSlash(d)))
		if err != nil {
			return nil, err
		}
		all = append(all, files...)
	}
	return all, nil
}

// SplitPaths splits a colon separated search path, dropping empty
// elements.
func SplitPaths(paths string) []string {
	var dirs []string
	for _, p := range strings.Split(paths, ":") {
		if p != "" {
			dirs = append(dirs, p)
		}
	}
	return dirs
}

// LinkSearchPaths returns the extra native library search directories
// for macOS builds: the Homebrew lib directory when brew is installed,
// then DYLD_LIBRARY_PATH and DYLD_FALLBACK_LIBRARY_PATH. Other targets
// have none.
func LinkSearchPaths(ctx context.Context, getenv func(string) string) []string {
	if !buildcfg.PlatformMacOS {
		return nil
	}
	var dirs []string
	if lib, ok := HomebrewLibPath(ctx); ok {
		dirs = append(dirs, lib)
	}
	dirs = append(dirs, SplitPaths(getenv("DYLD_LIBRARY_PATH"))...)
	dirs = append(dirs, SplitPaths(getenv("DYLD_FALLBACK_LIBRARY_PATH"))...)
	return dirs
}

// HomebrewLibPath returns the lib directory under `brew --prefix`.
func HomebrewLibPath(ctx context.Context) (string, bool) {
	out, err := exec.CommandContext(ctx, "brew", "--prefix").Output()
	if err != nil {
		return "", false
	}
	prefix := strings.TrimSpace(string(out))
	if prefix == "" {
		return "", false
	}
	return prefix + "/lib", true
}
