package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether a backing store is reachable.
type Pinger func(ctx context.Context) error

func HealthCheck(ping Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if ping != nil {
			if err := ping(ctx); err != nil {
				return c.JSON(http.StatusServiceUnavailable, errorResponse(http.StatusServiceUnavailable, "database unavailable"))
			}
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
