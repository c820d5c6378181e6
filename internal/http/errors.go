package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	apperrors "task-tracker.com/task-tracker/internal/errors"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Kind    string `json:"kind,omitempty"`
	Field   string `json:"field,omitempty"`
	Value   string `json:"value,omitempty"`
}

// ErrorHandler renders every error returned by a handler. Exceptions keep
// their message; anything unexpected is logged and hidden behind a generic
// 500.
func ErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := apperrors.StatusCode(err)
		body := ErrorResponse{Status: status}

		var appErr *apperrors.Exception
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			body.Message = appErr.Message
			body.Kind = appErr.Kind.String()
			body.Field = appErr.Field
			body.Value = appErr.Value
		case errors.As(err, &httpErr):
			body.Message = fmt.Sprint(httpErr.Message)
		default:
			log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("unhandled error")
			body.Message = http.StatusText(http.StatusInternalServerError)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			log.Error().Err(err).Msg("failed to write error response")
		}
	}
}
