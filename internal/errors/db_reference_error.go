package errors

import (
	"fmt"
	"strings"
)

var ErrDBReference = &Exception{
	Kind:    KindDBReference,
	Message: "Foreign key error.",
}

// ReferenceError describes a foreign key violation on object, where key is
// the offending field and value its rejected value.
func ReferenceError(message, object, key, value string, cause error) *Exception {
	if message == "" {
		message = ErrDBReference.Message
	}

	e := &Exception{
		Kind:    KindDBReference,
		Message: message,
		Object:  object,
		Field:   key,
		Value:   value,
		Err:     cause,
	}

	if object == "" && key == "" && value == "" {
		return e
	}

	var parts []string
	if object != "" {
		parts = append(parts, "Error in object", fmt.Sprintf("'%s'.", object))
	}
	if key != "" || value != "" {
		parts = append(parts, "Field")
		if key != "" {
			parts = append(parts, fmt.Sprintf("'%s'", key))
		}
		if value != "" {
			parts = append(parts, "value", fmt.Sprintf("'%s'", value))
		}
		parts = append(parts, "is invalid.")
	}

	e.Message = message + " " + strings.Join(parts, " ")
	return e
}
