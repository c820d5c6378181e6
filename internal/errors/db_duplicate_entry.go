package errors

import (
	"fmt"
	"strings"
)

var ErrDBDuplicateEntry = &Exception{
	Kind:    KindDBDuplicateEntry,
	Message: "Database object already exists.",
}

// DuplicateEntry describes a uniqueness violation. When object or value is
// known the message names them.
func DuplicateEntry(message, object, value string, cause error) *Exception {
	e := &Exception{
		Kind:    KindDBDuplicateEntry,
		Message: message,
		Object:  object,
		Value:   value,
		Err:     cause,
	}

	if object == "" && value == "" {
		if e.Message == "" {
			e.Message = ErrDBDuplicateEntry.Message
		}
		return e
	}

	parts := []string{"Database object"}
	if object != "" {
		parts = append(parts, fmt.Sprintf("'%s'", object))
	}
	if value != "" {
		parts = append(parts, fmt.Sprintf("with field value '%s'", value))
	} else {
		parts = append(parts, "with some of unique fields")
	}
	parts = append(parts, "already exists.")

	detail := strings.Join(parts, " ")
	if message != "" {
		e.Message = message + " " + detail
	} else {
		e.Message = detail
	}
	return e
}
