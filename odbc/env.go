package odbc

import (
	"errors"
	"strings"
)

// DriverInfo describes an installed driver as reported by SQLDrivers.
type DriverInfo struct {
	Description string
	Attributes  map[string]string
}

// DataSourceInfo describes a DSN as reported by SQLDataSources.
type DataSourceInfo struct {
	Name   string
	Driver string // driver description
}

// Environment is an ODBC 3 environment handle in the loaded driver
// manager.
type Environment struct {
	env SQLHENV
}

// NewEnvironment loads the driver manager if necessary and allocates an
// environment handle. The caller must Close it.
func NewEnvironment() (*Environment, error) {
	if err := initDM(); err != nil {
		return nil, err
	}

	var env SQLHENV
	ret := AllocHandle(SQL_HANDLE_ENV, SQL_NULL_HANDLE, (*SQLHANDLE)(&env))
	if !IsSuccess(ret) {
		return nil, errors.New("failed to allocate ODBC environment handle")
	}

	// Set ODBC version to 3.x
	ret = SetEnvAttr(env, SQL_ATTR_ODBC_VERSION, uintptr(SQL_OV_ODBC3), 0)
	if !IsSuccess(ret) {
		err := NewError(SQL_HANDLE_ENV, SQLHANDLE(env))
		FreeHandle(SQL_HANDLE_ENV, SQLHANDLE(env))
		return nil, err
	}
	return &Environment{env: env}, nil
}

// Close frees the environment handle.
func (e *Environment) Close() error {
	if e.env == 0 {
		return nil
	}
	ret := FreeHandle(SQL_HANDLE_ENV, SQLHANDLE(e.env))
	if !IsSuccess(ret) {
		return NewError(SQL_HANDLE_ENV, SQLHANDLE(e.env))
	}
	e.env = 0
	return nil
}

// Drivers lists the drivers known to the driver manager.
func (e *Environment) Drivers() ([]DriverInfo, error) {
	desc := make([]byte, 256)
	attr := make([]byte, 4096)
	var drivers []DriverInfo
	for dir := SQL_FETCH_FIRST; ; dir = SQL_FETCH_NEXT {
		descLen, attrLen, ret := Drivers(e.env, dir, desc, attr)
		if ret == SQL_NO_DATA {
			return drivers, nil
		}
		if !IsSuccess(ret) {
			return drivers, NewError(SQL_HANDLE_ENV, SQLHANDLE(e.env))
		}
		drivers = append(drivers, DriverInfo{
			Description: cString(desc, descLen),
			Attributes:  parseAttributes(attr[:clamp(attrLen, len(attr))]),
		})
	}
}

// DataSources lists the DSNs known to the driver manager. Direction is
// SQL_FETCH_FIRST for all, SQL_FETCH_FIRST_USER or
// SQL_FETCH_FIRST_SYSTEM to restrict the scope.
func (e *Environment) DataSources(direction SQLUSMALLINT) ([]DataSourceInfo, error) {
	name := make([]byte, SQL_MAX_DSN_LENGTH+1)
	desc := make([]byte, 256)
	var dsns []DataSourceInfo
	for dir := direction; ; dir = SQL_FETCH_NEXT {
		nameLen, descLen, ret := DataSources(e.env, dir, name, desc)
		if ret == SQL_NO_DATA {
			return dsns, nil
		}
		if !IsSuccess(ret) {
			return dsns, NewError(SQL_HANDLE_ENV, SQLHANDLE(e.env))
		}
		dsns = append(dsns, DataSourceInfo{
			Name:   cString(name, nameLen),
			Driver: cString(desc, descLen),
		})
	}
}

// clamp bounds a reported length to the buffer size, leaving room for
// the terminator when the value was truncated.
func clamp(n SQLSMALLINT, size int) int {
	switch {
	case n < 0:
		return 0
	case int(n) >= size:
		return size - 1
	}
	return int(n)
}

// cString returns the first n bytes of buf as a string.
func cString(buf []byte, n SQLSMALLINT) string {
	return string(buf[:clamp(n, len(buf))])
}

// parseAttributes parses a SQLDrivers attribute list: key=value pairs
// separated by NUL bytes and terminated by an empty pair.
func parseAttributes(b []byte) map[string]string {
	attrs := make(map[string]string)
	for _, kv := range strings.Split(string(b), "\x00") {
		if kv == "" {
			continue
		}
		k, v, _ := strings.Cut(kv, "=")
		attrs[k] = v
	}
	return attrs
}
