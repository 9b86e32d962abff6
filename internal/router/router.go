// Package router wires HTTP routes to their handlers. This file covers
// the unauthenticated surface: health, casting calls, the cast and crew
// directory pages and the resources page. Public GETs sit behind the
// Redis response cache and the token-bucket rate limiter; both pass
// requests through untouched when Redis is absent.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/callboardhq/callboard/internal/config"
	"github.com/callboardhq/callboard/internal/handler"
	"github.com/callboardhq/callboard/internal/middleware"
)

// RegisterPublicRoutes mounts the read-only routes on e.
func RegisterPublicRoutes(e *echo.Echo, h *handler.PublicHandler, rdb *redis.Client, cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig) {
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1",
		middleware.RateLimit(rlCfg, rdb),
		middleware.ResponseCache(cacheCfg, rdb),
	)

	v1.GET("/casting-calls", h.GetCastingCalls)
	v1.GET("/casting-calls/:slug", h.GetCastingCall)

	v1.GET("/directory", h.GetDirectory)
	v1.GET("/directory/cast", h.GetCastDirectory)
	v1.GET("/directory/crew", h.GetCrewDirectory)

	v1.GET("/resources", h.GetResources)
}
