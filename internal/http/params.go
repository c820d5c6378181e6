package http

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.BadRequest("invalid %s: %q", name, c.Param(name))
	}
	return uint(id), nil
}

// filterID parses an optional id filter. Malformed filters are rejected.
func filterID(c echo.Context, name string) (*uint, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, apperrors.BadRequest("invalid %s: %q", name, raw)
	}
	v := uint(id)
	return &v, nil
}

// lenientID parses a pagination marker. Malformed values count as absent.
func lenientID(c echo.Context, name string) *uint {
	id, err := strconv.ParseUint(c.QueryParam(name), 10, 64)
	if err != nil {
		return nil
	}
	v := uint(id)
	return &v
}

// lenientInt parses a page size. Malformed values count as absent and
// out-of-range integers saturate, so the paginator still clamps them.
func lenientInt(c echo.Context, name string) *int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil
	}
	return &v
}

func setPageHeaders(c echo.Context, limit int, total int64, marker *uint) {
	h := c.Response().Header()
	h.Set("X-Limit", strconv.Itoa(limit))
	h.Set("X-Total", strconv.FormatInt(total, 10))
	if marker != nil {
		h.Set("X-Marker", strconv.FormatUint(uint64(*marker), 10))
	}
}
