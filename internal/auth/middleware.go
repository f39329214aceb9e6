package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const adminIDKey = "adminId"

// Middleware rejects requests without a valid bearer token and stores the admin id.
func Middleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenStr == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}

			claims, err := ParseToken(secret, tokenStr)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}

			c.Set(adminIDKey, claims.Subject)
			return next(c)
		}
	}
}

// AdminID returns the admin id stored by Middleware, or "".
func AdminID(c echo.Context) string {
	id, _ := c.Get(adminIDKey).(string)
	return id
}
