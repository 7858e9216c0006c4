package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/campuslife/activity-system/internal/core/service"
)

// Auth extracts and verifies the bearer token, injecting the identity claims
// into the request context. A missing or empty token is 401; a token that is
// present but fails verification (bad signature, malformed, expired) is 403.
func Auth(codec *service.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")

			var token string
			if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				token = strings.TrimSpace(parts[1])
			}
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "access denied: token not found")
			}

			claims, err := codec.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "access denied: invalid token")
			}

			c.Set("user_id", claims.UserID)
			c.Set("username", claims.Username)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
