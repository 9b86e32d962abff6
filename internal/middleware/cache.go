package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/callboardhq/callboard/internal/config"
)

// cacheWriter captures the response body and status while forwarding to
// the client, up to a byte limit beyond which the response is passed
// through uncached.
type cacheWriter struct {
	http.ResponseWriter
	status   int
	buf      bytes.Buffer
	size     int64
	limit    int64
	overflow bool
}

func (w *cacheWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.size += int64(len(b))
	if w.limit > 0 && w.size > w.limit {
		w.overflow = true
	} else {
		w.buf.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

// ResponseCache caches successful GET responses from the public listing
// routes in Redis. Entries pack the status and JSON body; the content
// type is always application/json on these routes so headers are not
// stored. When rdb is nil or the cache is disabled the middleware is a
// pass-through. Admin routes must not be registered behind this
// middleware: a save needs to be visible on the very next load.
func ResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 60 * time.Second
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			ctx := c.Request().Context()
			key := cacheKey(cfg.Prefix, c)

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil && len(raw) >= 4 {
				status := int(binary.BigEndian.Uint32(raw[:4]))
				c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
				c.Response().Header().Set("X-Cache", "HIT")
				c.Response().WriteHeader(status)
				_, _ = c.Response().Write(raw[4:])
				return nil
			}

			cw := &cacheWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: int64(cfg.MaxBodyBytes)}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			if cw.status == http.StatusOK && !cw.overflow {
				body := cw.buf.Bytes()
				payload := make([]byte, 4+len(body))
				binary.BigEndian.PutUint32(payload[:4], uint32(cw.status))
				copy(payload[4:], body)
				writeCacheEntry(rdb, key, payload, ttl, cacheWriteTimeout)
			}
			return nil
		}
	}
}

// cacheWriteTimeout bounds the write-behind store call. The response
// has already been sent when it runs, so a stalled Redis write must not
// pin the request goroutine.
const cacheWriteTimeout = 2 * time.Second

// writeCacheEntry stores a packed response under key. A store failure
// or timeout is invisible to the client.
func writeCacheEntry(rdb *redis.Client, key string, payload []byte, ttl, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	_ = rdb.SetEx(ctx, key, payload, ttl).Err()
}

// cacheKey hashes the concrete request path and raw query under the
// configured prefix. The registered route pattern cannot be the key: on
// a parameterized route every slug would collapse into one entry.
func cacheKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Request().URL.Path + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum)
}
