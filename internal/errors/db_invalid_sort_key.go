package errors

import "fmt"

var ErrDBInvalidSortKey = &Exception{
	Kind:    KindDBInvalidSortKey,
	Message: "Invalid sort field",
}

func InvalidSortKey(field string) *Exception {
	return &Exception{
		Kind:    KindDBInvalidSortKey,
		Message: fmt.Sprintf("%s: %s", ErrDBInvalidSortKey.Message, field),
		Field:   field,
	}
}
