package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// FromDB translates a gorm/sqlite error into an Exception. Errors that are
// already exceptions pass through unchanged; nil stays nil.
func FromDB(err error, object string) error {
	if err == nil {
		return nil
	}

	var appErr *Exception
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &Exception{
			Kind:    KindNotFound,
			Message: ErrNotFound.Message,
			Object:  object,
			Err:     err,
		}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return DuplicateEntry("", object, "", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ReferenceError("", object, "", "", err)
	case errors.Is(err, gorm.ErrInvalidField):
		return DBError(KindDBColumn, "", err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "database is locked"),
		strings.Contains(msg, "deadlock"):
		return DBError(KindDBDeadLock, "", err)
	case strings.Contains(msg, "no such column"):
		return DBError(KindDBColumn, "", err)
	case strings.Contains(msg, "unable to open database"),
		strings.Contains(msg, "sql: database is closed"),
		strings.Contains(msg, "connection refused"):
		return DBError(KindDBConnection, "", err)
	case strings.Contains(msg, "invalid utf-8"):
		return DBError(KindDBInvalidUnicodeParameter, "", err)
	}

	return DBError(KindDB, "", err)
}
