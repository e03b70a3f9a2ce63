package odbc

// ODBC Handle types (opaque pointers)
type SQLHANDLE uintptr
type SQLHENV SQLHANDLE

// ODBC Integer types
type SQLSMALLINT int16
type SQLUSMALLINT uint16
type SQLINTEGER int32
type SQLRETURN SQLSMALLINT

// Handle type identifiers
const (
	SQL_HANDLE_ENV  SQLSMALLINT = 1
	SQL_HANDLE_DBC  SQLSMALLINT = 2
	SQL_HANDLE_STMT SQLSMALLINT = 3
	SQL_HANDLE_DESC SQLSMALLINT = 4
)

// Return codes
const (
	SQL_SUCCESS           SQLRETURN = 0
	SQL_SUCCESS_WITH_INFO SQLRETURN = 1
	SQL_ERROR             SQLRETURN = -1
	SQL_INVALID_HANDLE    SQLRETURN = -2
	SQL_NO_DATA           SQLRETURN = 100
	SQL_NEED_DATA         SQLRETURN = 99
	SQL_STILL_EXECUTING   SQLRETURN = 2
)

// Null handle constant
const SQL_NULL_HANDLE SQLHANDLE = 0

// ODBC version constants
const (
	SQL_OV_ODBC2 = 2
	SQL_OV_ODBC3 = 3
)

// Environment attributes
const (
	SQL_ATTR_ODBC_VERSION SQLINTEGER = 200
	SQL_ATTR_OUTPUT_NTS   SQLINTEGER = 10001
)

// Enumeration directions for SQLDrivers and SQLDataSources
const (
	SQL_FETCH_NEXT         SQLUSMALLINT = 1
	SQL_FETCH_FIRST        SQLUSMALLINT = 2
	SQL_FETCH_FIRST_USER   SQLUSMALLINT = 31
	SQL_FETCH_FIRST_SYSTEM SQLUSMALLINT = 32
)

// Buffer sizes
const (
	SQL_MAX_DSN_LENGTH     = 32
	SQL_MAX_MESSAGE_LENGTH = 512
)

// IsSuccess checks if the return code indicates success
func IsSuccess(ret SQLRETURN) bool {
	return ret == SQL_SUCCESS || ret == SQL_SUCCESS_WITH_INFO
}
