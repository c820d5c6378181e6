package errors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Kind int

const (
	KindClientSide Kind = iota
	KindNotFound
	KindNotEmpty
	KindDB
	KindDBDuplicateEntry
	KindDBReference
	KindDBConnection
	KindDBColumn
	KindDBDeadLock
	KindDBInvalidUnicodeParameter
	KindDBMigration
	KindDBInvalidSortKey
)

var kindNames = map[Kind]string{
	KindClientSide:                "client_error",
	KindNotFound:                  "not_found",
	KindNotEmpty:                  "not_empty",
	KindDB:                        "db_error",
	KindDBDuplicateEntry:          "db_duplicate_entry",
	KindDBReference:               "db_reference_error",
	KindDBConnection:              "db_connection_error",
	KindDBColumn:                  "db_column_error",
	KindDBDeadLock:                "db_deadlock",
	KindDBInvalidUnicodeParameter: "db_invalid_unicode_parameter",
	KindDBMigration:               "db_migration_error",
	KindDBInvalidSortKey:          "db_invalid_sort_key",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsDB reports whether the kind belongs to the database family.
func (k Kind) IsDB() bool {
	return k >= KindDB
}

// Exception is a client-facing error. StatusCode overrides the status the
// kind maps to when set.
type Exception struct {
	Kind       Kind
	Message    string
	StatusCode int

	Object string
	Field  string
	Value  string

	Err error
}

func (e *Exception) Error() string {
	return e.Message
}

func (e *Exception) Unwrap() error {
	return e.Err
}

// Is matches any exception of the same kind, so the package-level sentinels
// work with errors.Is.
func (e *Exception) Is(target error) bool {
	var other *Exception
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind
}

func (e *Exception) Status() int {
	if e.StatusCode != 0 {
		return e.StatusCode
	}
	if e.Kind == KindNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// StatusCode is the single point where errors are turned into HTTP statuses.
func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Status()
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}

// KindOf returns the kind of the first Exception in the chain.
func KindOf(err error) (Kind, bool) {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return 0, false
}
