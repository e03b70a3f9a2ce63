package odbcinst

import (
	"errors"
	"fmt"

	"github.com/slingdata-io/ltdl"
)

// ErrNoModulePath is reported for a driver entry without a Driver key.
// An empty path must never reach the loader: dlopen("") returns the
// running program.
var ErrNoModulePath = errors.New("no module path")

// RequiredSymbols are the entry points every ODBC 3 driver exports.
var RequiredSymbols = []string{"SQLDriverConnect", "SQLAllocHandle", "SQLFreeHandle"}

// Report is the result of probing a driver module.
type Report struct {
	Driver  Driver
	Loaded  bool
	Missing []string
	Err     error
}

// OK reports whether the module loaded and exported every symbol.
func (r Report) OK() bool {
	return r.Loaded && len(r.Missing) == 0 && r.Err == nil
}

// Probe opens d's module with l, resolves each of symbols
// (RequiredSymbols when none are given) and closes it again.
func Probe(l ltdl.Loader, d Driver, symbols ...string) Report {
	if len(symbols) == 0 {
		symbols = RequiredSymbols
	}
	rep := Report{Driver: d}
	if d.Path == "" {
		rep.Err = fmt.Errorf("driver %q: %w", d.Name, ErrNoModulePath)
		return rep
	}
	h, err := l.Open(d.Path)
	if err != nil {
		rep.Err = err
		return rep
	}
	rep.Loaded = true
	for _, s := range symbols {
		if _, err := l.Sym(h, s); err != nil {
			rep.Missing = append(rep.Missing, s)
		}
	}
	if err := l.Close(h); err != nil {
		rep.Err = err
	}
	return rep
}

// ProbeAll probes every driver in r.
func (r *Registry) ProbeAll(l ltdl.Loader, symbols ...string) []Report {
	drivers := r.Drivers()
	reports := make([]Report, len(drivers))
	for i, d := range drivers {
		reports[i] = Probe(l, d, symbols...)
	}
	return reports
}
