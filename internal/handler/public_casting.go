// Package handler exposes HTTP handlers for the public and admin
// surfaces. This file defines the public casting-call handlers. These
// routes require no authentication; every response is a fetch-and-render
// view over rows from the repository layer, with the partition and
// expiring-window logic applied server-side by the listing package.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/callboardhq/callboard/internal/listing"
	"github.com/callboardhq/callboard/internal/model"
	"github.com/callboardhq/callboard/internal/repository"
	"github.com/callboardhq/callboard/internal/store"
)

// CastingSource is the slice of the casting repository the public
// handlers need. Tests substitute an in-memory implementation.
type CastingSource interface {
	List(ctx context.Context) ([]model.CastingCall, error)
	GetBySlug(ctx context.Context, slug string) (*model.CastingCall, error)
}

// PublicHandler aggregates the data sources backing the unauthenticated
// read surface. Directory reads go through the store interface so the
// public pages serve whichever backend was selected at startup.
type PublicHandler struct {
	CastingRepo  CastingSource
	Directory    store.DirectoryStore
	ResourceRepo *repository.ResourceRepo

	// now is the clock used for the expiring-soon window; tests pin it.
	now func() time.Time
}

// NewPublicHandler constructs a PublicHandler and panics if any
// dependency is nil.
func NewPublicHandler(casting CastingSource, dir store.DirectoryStore, res *repository.ResourceRepo) *PublicHandler {
	if casting == nil || dir == nil || res == nil {
		panic("nil dependency passed to NewPublicHandler")
	}
	return &PublicHandler{
		CastingRepo:  casting,
		Directory:    dir,
		ResourceRepo: res,
		now:          time.Now,
	}
}

// GetCastingCalls handles GET /v1/casting-calls. The collection is
// sorted by post date descending here, not trusted to query ordering,
// then partitioned: active, the archived tail (rendered collapsed), and
// the expiring-soon subset of active. A database failure degrades to
// empty lists rather than an error page; the listing simply renders
// nothing.
func (h *PublicHandler) GetCastingCalls(c echo.Context) error {
	ctx := c.Request().Context()
	calls, err := h.CastingRepo.List(ctx)
	if err != nil {
		c.Logger().Errorf("casting list failed: %v", err)
		calls = nil
	}
	listing.SortByDateDesc(calls)
	active, archived := listing.Partition(calls)
	expiring := listing.ExpiringSoon(active, h.now())
	return c.JSON(http.StatusOK, echo.Map{
		"items":    active,
		"archived": archived,
		"expiring": expiring,
	})
}

// GetCastingCall handles GET /v1/casting-calls/:slug. An unknown slug is
// a 404 with an inline error body so the page renders a not-found state
// instead of crashing.
func (h *PublicHandler) GetCastingCall(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")
	call, err := h.CastingRepo.GetBySlug(ctx, slug)
	if err != nil {
		if err == repository.ErrCastingCallNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "casting call not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, call)
}
