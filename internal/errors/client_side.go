package errors

import "fmt"

func BadRequest(format string, args ...any) *Exception {
	return &Exception{
		Kind:    KindClientSide,
		Message: fmt.Sprintf(format, args...),
	}
}
