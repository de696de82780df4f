package handler // declare the package name; contains HTTP handlers

import (
	"context"  // context bounds the store ping
	"net/http" // net/http provides status codes and response helpers
	"time"     // time sets the ping timeout

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Health returns a health‑check endpoint used by load balancers and
// monitoring systems.  It answers plain text "ok" with 200 when ping
// succeeds, and 503 with a JSON error otherwise.  A nil ping always succeeds.
func Health(ping func(ctx context.Context) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "store unavailable"})
			}
		}
		return c.String(http.StatusOK, "ok") // write "ok" with a 200 OK status
	}
}
