package middlewares

import (
	"net/http"
	"strings"

	"kokoro-diary/app/server/jwt"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ContextKeyUser is where Auth stores the verified identity on the echo context.
const ContextKeyUser = "user"

// Auth verifies the bearer credential on every request it wraps.
//
// The status split is part of the API contract and client logic branches on it:
// no credential supplied (missing or malformed header) is 401, a credential
// that was supplied but rejected (bad signature, expired) is 403.
func Auth(j *jwt.JWT, l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.NoContent(http.StatusUnauthorized)
			}

			splits := strings.Split(authHeader, " ")
			if len(splits) != 2 || splits[0] != "Bearer" {
				return c.NoContent(http.StatusUnauthorized)
			}

			user, err := j.Parse(splits[1])
			if err != nil {
				l.Debug("rejected credential", zap.Error(err))
				return c.NoContent(http.StatusForbidden)
			}

			c.Set(ContextKeyUser, user)

			return next(c)
		}
	}
}
