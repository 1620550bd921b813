package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Guard returns echo middleware that extracts and validates a Bearer JWT
// from the Authorization header and injects the Principal into the request
// context. Requests without a valid token fail with 401 before the handler
// runs.
func Guard(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, err := ParseFromHeader(c.Request().Header.Get(echo.HeaderAuthorization), secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized", "error": err.Error()})
			}
			req := c.Request()
			c.SetRequest(req.WithContext(WithPrincipal(req.Context(), p)))
			return next(c)
		}
	}
}
