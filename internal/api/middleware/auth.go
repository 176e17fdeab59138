package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fintrack/finance-tracker/internal/core/ports"
)

// UserIDKey is the context key under which Auth stores the verified user id.
// Handlers must read identity from here and never from request bodies.
const UserIDKey = "user_id"

// Auth extracts the bearer token, verifies it, and injects the user id into
// the request context. On failure the request short-circuits with 401 and no
// downstream handler runs.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}
