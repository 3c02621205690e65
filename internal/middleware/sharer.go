package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// HeaderSharerUserID carries the acting user's identity on every
// authenticated route.
const HeaderSharerUserID = "X-Sharer-User-Id"

const userIDKey = "sharerUserID"

// RequireSharerUserID parses the X-Sharer-User-Id header and stores it in
// the request context. Missing or malformed headers are a 400.
func RequireSharerUserID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(HeaderSharerUserID)
		if raw == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "missing "+HeaderSharerUserID+" header")
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid "+HeaderSharerUserID+" header")
		}
		c.Set(userIDKey, id)
		return next(c)
	}
}

// SharerUserID returns the acting user id stored by RequireSharerUserID.
func SharerUserID(c echo.Context) int64 {
	id, _ := c.Get(userIDKey).(int64)
	return id
}
