// Package odbcinst reads the driver and data source registries
// (odbcinst.ini and odbc.ini) and checks that registered driver modules
// can be loaded.
package odbcinst

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/slingdata-io/ltdl/buildcfg"
)

// Driver is a driver registered in odbcinst.ini.
type Driver struct {
	Name        string
	Description string
	Path        string // driver module
	Setup       string // setup module, may be empty
}

// DataSource is a DSN registered in odbc.ini.
type DataSource struct {
	Name        string
	Description string
	Driver      string // driver name or module path
}

// Registry is a parsed odbcinst.ini.
type Registry struct {
	drivers map[string]Driver
}

var loadOptions = ini.LoadOptions{InsensitiveKeys: true}

// reserved sections hold driver-manager settings, not drivers.
func reserved(name string) bool {
	switch strings.ToUpper(name) {
	case ini.DefaultSection, "ODBC", "ODBC DRIVERS", "ODBC DATA SOURCES":
		return true
	}
	return false
}

// Load parses the odbcinst.ini at path.
func Load(path string) (*Registry, error) {
	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read driver registry %q: %w", path, err)
	}
	return newRegistry(f), nil
}

// Parse parses odbcinst.ini content.
func Parse(data []byte) (*Registry, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse driver registry: %w", err)
	}
	return newRegistry(f), nil
}

func newRegistry(f *ini.File) *Registry {
	r := &Registry{drivers: make(map[string]Driver)}
	for _, s := range f.Sections() {
		if reserved(s.Name()) {
			continue
		}
		r.drivers[s.Name()] = Driver{
			Name:        s.Name(),
			Description: s.Key("description").String(),
			Path:        modulePath(s, "driver"),
			Setup:       modulePath(s, "setup"),
		}
	}
	return r
}

// modulePath returns the value of key, preferring key64 on 64-bit
// targets as unixODBC does.
func modulePath(s *ini.Section, key string) string {
	if buildcfg.SizeofLongInt == 8 {
		if v := s.Key(key + "64").String(); v != "" {
			return v
		}
	}
	return s.Key(key).String()
}

// Drivers returns the registered drivers sorted by name.
func (r *Registry) Drivers() []Driver {
	drivers := make([]Driver, 0, len(r.drivers))
	for _, d := range r.drivers {
		drivers = append(drivers, d)
	}
	sort.Slice(drivers, func(i, j int) bool { return drivers[i].Name < drivers[j].Name })
	return drivers
}

// Driver returns the driver registered as name.
func (r *Registry) Driver(name string) (Driver, bool) {
	d, ok := r.drivers[name]
	return d, ok
}

// LoadDataSources parses the odbc.ini at path.
func LoadDataSources(path string) ([]DataSource, error) {
	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data sources %q: %w", path, err)
	}
	return dataSources(f), nil
}

// ParseDataSources parses odbc.ini content.
func ParseDataSources(data []byte) ([]DataSource, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse data sources: %w", err)
	}
	return dataSources(f), nil
}

func dataSources(f *ini.File) []DataSource {
	var dsns []DataSource
	for _, s := range f.Sections() {
		if reserved(s.Name()) {
			continue
		}
		dsns = append(dsns, DataSource{
			Name:        s.Name(),
			Description: s.Key("description").String(),
			Driver:      s.Key("driver").String(),
		})
	}
	sort.Slice(dsns, func(i, j int) bool { return dsns[i].Name < dsns[j].Name })
	return dsns
}

// Resolve returns the driver module for ds. The DSN's Driver entry is
// either a registered driver name or a module path.
func (r *Registry) Resolve(ds DataSource) (string, error) {
	if d, ok := r.drivers[ds.Driver]; ok {
		if d.Path == "" {
			return "", fmt.Errorf("driver %q for data source %q has no module path", d.Name, ds.Name)
		}
		return d.Path, nil
	}
	if ds.Driver == "" {
		return "", fmt.Errorf("data source %q has no driver", ds.Name)
	}
	return ds.Driver, nil
}

// SystemDir returns the directory holding the system ini files:
// $ODBCSYSINI when set, otherwise the build default.
func SystemDir(getenv func(string) string) string {
	if dir := getenv("ODBCSYSINI"); dir != "" {
		return dir
	}
	return buildcfg.SystemFilePath
}

// InstFile returns the path of odbcinst.ini: $ODBCINSTINI when set
// (relative to SystemDir unless absolute), otherwise SystemDir's
// odbcinst.ini.
func InstFile(getenv func(string) string) string {
	dir := SystemDir(getenv)
	if name := getenv("ODBCINSTINI"); name != "" {
		if filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(dir, name)
	}
	return filepath.Join(dir, buildcfg.OdbcinstSystemIni)
}

// DataSourceFile returns the path of the system odbc.ini: $ODBCINI when
// set, otherwise SystemDir's odbc.ini.
func DataSourceFile(getenv func(string) string) string {
	if path := getenv("ODBCINI"); path != "" {
		return path
	}
	return filepath.Join(SystemDir(getenv), buildcfg.OdbcSystemIni)
}
