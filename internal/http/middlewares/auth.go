package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"task-tracker.com/task-tracker/internal/auth"
)

const userIDKey = "user_id"

// RequireAuth rejects requests without a valid bearer token and stores the
// acting user id on the context.
func RequireAuth(tokens *auth.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization header required")
			}

			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}

			userID, err := tokens.Validate(token)
			if err != nil {
				if errors.Is(err, auth.ErrExpiredToken) {
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(c echo.Context) (uint, bool) {
	id, ok := c.Get(userIDKey).(uint)
	return id, ok
}
