package odbc

import (
	"errors"
	"fmt"
	"strings"
)

// Error represents an ODBC error with diagnostic information from the driver.
// It implements the error interface and provides SQLState, native error code,
// and a human-readable message.
type Error struct {
	SQLState    string
	NativeError int32
	Message     string
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s (native error: %d)", e.SQLState, e.Message, e.NativeError)
}

// Unwrap returns nil as Error is a terminal error type.
// This method supports Go 1.13+ error handling with errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return nil
}

// Is reports whether target matches this error's SQLState.
// This allows using errors.Is to check for specific ODBC errors.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.SQLState == t.SQLState
	}
	return false
}

// DiagRecord represents a single diagnostic record from ODBC
type DiagRecord struct {
	SQLState    string
	NativeError int32
	Message     string
}

// Errors represents multiple ODBC errors
type Errors []Error

// Error implements the error interface for multiple errors
func (e Errors) Error() string {
	if len(e) == 0 {
		return "unknown ODBC error"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	for i, err := range e {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// GetDiagRecords retrieves all diagnostic records for a handle
func GetDiagRecords(handleType SQLSMALLINT, handle SQLHANDLE) []DiagRecord {
	var records []DiagRecord
	sqlState := make([]byte, 6)
	message := make([]byte, SQL_MAX_MESSAGE_LENGTH)

	for i := SQLSMALLINT(1); ; i++ {
		nativeError, msgLen, ret := GetDiagRec(handleType, handle, i, sqlState, message)
		if !IsSuccess(ret) {
			break
		}
		records = append(records, DiagRecord{
			SQLState:    string(sqlState[:5]),
			NativeError: int32(nativeError),
			Message:     cString(message, msgLen),
		})
	}
	return records
}

// newError builds the error for a set of diagnostic records.
func newError(records []DiagRecord) error {
	switch len(records) {
	case 0:
		return &Error{
			SQLState: SQLStateGeneralError,
			Message:  "unknown ODBC error",
		}
	case 1:
		e := Error(records[0])
		return &e
	}
	errs := make(Errors, len(records))
	for i, rec := range records {
		errs[i] = Error(rec)
	}
	return errs
}

// NewError creates an Error from the diagnostic records of a handle
func NewError(handleType SQLSMALLINT, handle SQLHANDLE) error {
	return newError(GetDiagRecords(handleType, handle))
}

// SQLState values reported by the driver manager itself.
const (
	SQLStateGeneralError          = "HY000" // General error
	SQLStateMemoryAllocationError = "HY001" // Memory allocation error
	SQLStateFunctionSequenceError = "HY010" // Function sequence error
	SQLStateInvalidBufferLength   = "HY090" // Invalid string or buffer length
	SQLStateInvalidDirection      = "HY103" // Invalid retrieval code
	SQLStateDriverNotLoaded       = "IM003" // Specified driver could not be loaded
	SQLStateDataSourceNotFound    = "IM002" // Data source name not found
	SQLStateDriverLoadFailed      = "IM004" // Driver's SQLAllocHandle on SQL_HANDLE_ENV failed
)

// IsDriverLoadError reports whether err indicates that the driver
// manager could not load a driver module (SQLState IM003 or IM004).
func IsDriverLoadError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.SQLState == SQLStateDriverNotLoaded || e.SQLState == SQLStateDriverLoadFailed
	}
	var es Errors
	if errors.As(err, &es) {
		for _, rec := range es {
			if rec.SQLState == SQLStateDriverNotLoaded || rec.SQLState == SQLStateDriverLoadFailed {
				return true
			}
		}
	}
	return false
}

// FormatReturnCode returns a string representation of an ODBC return code
func FormatReturnCode(ret SQLRETURN) string {
	switch ret {
	case SQL_SUCCESS:
		return "SQL_SUCCESS"
	case SQL_SUCCESS_WITH_INFO:
		return "SQL_SUCCESS_WITH_INFO"
	case SQL_ERROR:
		return "SQL_ERROR"
	case SQL_INVALID_HANDLE:
		return "SQL_INVALID_HANDLE"
	case SQL_NO_DATA:
		return "SQL_NO_DATA"
	case SQL_NEED_DATA:
		return "SQL_NEED_DATA"
	case SQL_STILL_EXECUTING:
		return "SQL_STILL_EXECUTING"
	default:
		return fmt.Sprintf("SQLRETURN(%d)", ret)
	}
}
