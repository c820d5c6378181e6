package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Render now so the logged status is the one the client sees.
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			var evt *zerolog.Event
			switch {
			case res.Status >= 500:
				evt = log.Error().Err(err)
			case res.Status >= 400:
				evt = log.Warn()
			default:
				evt = log.Info()
			}

			evt.
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP()).
				Msg("request")

			return nil
		}
	}
}
