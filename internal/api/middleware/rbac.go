package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole enforces role-based access control. The rejection message
// names the required role so callers can tell a role mismatch apart from a
// token problem.
func RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role != requiredRole {
				return echo.NewHTTPError(http.StatusForbidden,
					fmt.Sprintf("access forbidden: only %s can access this", requiredRole))
			}
			return next(c)
		}
	}
}
