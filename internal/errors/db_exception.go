package errors

var (
	ErrDB = &Exception{
		Kind:    KindDB,
		Message: "Database Exception",
	}

	ErrDBConnection = &Exception{
		Kind:    KindDBConnection,
		Message: "Connection to database failed.",
	}

	ErrDBColumn = &Exception{
		Kind:    KindDBColumn,
		Message: "Column is invalid or not found",
	}

	ErrDBDeadLock = &Exception{
		Kind:    KindDBDeadLock,
		Message: "Database in dead lock",
	}

	ErrDBInvalidUnicodeParameter = &Exception{
		Kind:    KindDBInvalidUnicodeParameter,
		Message: "Unicode parameter is passed to a database without encoding directive",
	}

	ErrDBMigration = &Exception{
		Kind:    KindDBMigration,
		Message: "migrations could not be completed successfully",
	}
)

// DBError builds a database exception of the given kind around cause. An
// empty message falls back to the kind's default text.
func DBError(kind Kind, message string, cause error) *Exception {
	if message == "" {
		message = defaultMessage(kind)
	}
	return &Exception{Kind: kind, Message: message, Err: cause}
}

func defaultMessage(kind Kind) string {
	switch kind {
	case KindDBConnection:
		return ErrDBConnection.Message
	case KindDBColumn:
		return ErrDBColumn.Message
	case KindDBDeadLock:
		return ErrDBDeadLock.Message
	case KindDBInvalidUnicodeParameter:
		return ErrDBInvalidUnicodeParameter.Message
	case KindDBMigration:
		return ErrDBMigration.Message
	case KindDBDuplicateEntry:
		return ErrDBDuplicateEntry.Message
	case KindDBReference:
		return ErrDBReference.Message
	case KindDBInvalidSortKey:
		return ErrDBInvalidSortKey.Message
	case KindNotFound:
		return ErrNotFound.Message
	case KindNotEmpty:
		return ErrNotEmpty.Message
	}
	return ErrDB.Message
}
