// This file defines the admin session endpoints. There is a single
// operator identity: a password checked against a configured bcrypt hash,
// exchanged for a signed token in an HTTP-only cookie. Everything under
// /v1/admin except login and logout sits behind the AdminAuth middleware
// that verifies that cookie.
package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/callboardhq/callboard/internal/config"
	"github.com/callboardhq/callboard/internal/utils"
)

type loginReq struct {
	Password string `json:"password"`
}

// Login handles POST /v1/admin/login. A wrong password is a plain 401.
func (h *AdminHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Password == "" || !utils.VerifyPassword(h.Cfg.AdminPasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid password"})
	}
	tok, err := utils.NewAdminToken(h.Cfg.JWTSecret, h.Cfg.SessionTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue session failed"})
	}
	c.SetCookie(sessionCookie(h.Cfg, tok.Token, tok.Exp))
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// Logout handles POST /v1/admin/logout by expiring the session cookie.
// The token itself is stateless, so clearing the cookie is the whole
// operation.
func (h *AdminHandler) Logout(c echo.Context) error {
	c.SetCookie(sessionCookie(h.Cfg, "", time.Unix(0, 0)))
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// sessionCookie builds the admin session cookie. Secure is tied to the
// prod environment so local development over plain HTTP still works.
func sessionCookie(cfg config.Config, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.AdminCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   cfg.Env == "prod",
		SameSite: http.SameSiteLaxMode,
	}
}
