package errors

import (
	"fmt"
	"net/http"
)

var ErrNotFound = &Exception{
	Kind:       KindNotFound,
	Message:    "Object not found",
	StatusCode: http.StatusNotFound,
}

func NotFound(format string, args ...any) *Exception {
	return &Exception{
		Kind:       KindNotFound,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: http.StatusNotFound,
	}
}
