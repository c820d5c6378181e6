package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "task-tracker.com/task-tracker/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// toException turns validator output into a client error naming the first
// offending field.
func toException(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		e := apperrors.BadRequest("Invalid %s: %s", fe.Field(), tagMessage(fe))
		e.Field = fe.Field()
		return e
	}
	return apperrors.BadRequest("%s", err.Error())
}

func fieldException(field, message string) error {
	e := apperrors.BadRequest("Invalid %s: %s", field, message)
	e.Field = field
	return e
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	}
	return fmt.Sprintf("failed on %s", fe.Tag())
}
