package middleware // middleware provides shared request processing for handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/callboardhq/callboard/internal/utils"
)

// AdminAuth returns an Echo middleware that validates the admin session
// cookie. The admin surface has a single operator identity: a signed
// token in an HTTP-only cookie, minted by the login handler. A missing
// cookie and an invalid/expired token both yield 401, with distinct
// messages so the operator knows whether to log in again or just retry.
func AdminAuth(secret, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Not authenticated"})
			}
			if err := utils.VerifyAdminToken(secret, cookie.Value); err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid or expired session"})
			}
			c.Set("admin", true)
			return next(c)
		}
	}
}
