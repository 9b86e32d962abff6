// This file covers the admin surface. Login and logout are open; every
// other admin route requires the session cookie. Admin responses are
// never cached, and the rate limiter still applies so a credential
// stuffing loop against login gets throttled.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/callboardhq/callboard/internal/config"
	"github.com/callboardhq/callboard/internal/handler"
	"github.com/callboardhq/callboard/internal/middleware"
)

// RegisterAdminRoutes mounts the authenticated write routes on e.
func RegisterAdminRoutes(e *echo.Echo, h *handler.AdminHandler, rdb *redis.Client, rlCfg config.RateLimitConfig) {
	admin := e.Group("/v1/admin", middleware.RateLimit(rlCfg, rdb))

	admin.POST("/login", h.Login)
	admin.POST("/logout", h.Logout)

	authed := admin.Group("", middleware.AdminAuth(h.Cfg.JWTSecret, h.Cfg.AdminCookieName))
	authed.GET("/data-source", h.DataSource)
	authed.POST("/directory", h.SaveDirectory)
	authed.POST("/save", h.SaveFile)
	authed.POST("/delete", h.DeleteFile)
}
