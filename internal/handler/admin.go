// This file defines the admin write handlers: the directory save (which
// dispatches to whichever persistence backend was selected at startup),
// the generic file-commit and file-delete endpoints used by the casting
// authoring flow, and the data-source flag the editor fetches on load.
package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/callboardhq/callboard/internal/config"
	"github.com/callboardhq/callboard/internal/directory"
	"github.com/callboardhq/callboard/internal/github"
	"github.com/callboardhq/callboard/internal/queue"
	"github.com/callboardhq/callboard/internal/store"
)

// AdminHandler bundles the dependencies of the admin write surface. The
// GitHub client may be nil when the contents API is not configured; the
// file endpoints answer 503 in that case while the rest of the admin
// surface keeps working.
type AdminHandler struct {
	Cfg    config.Config
	Store  store.DirectoryStore
	GitHub *github.Client
}

// NewAdminHandler constructs an AdminHandler. gh may be nil.
func NewAdminHandler(cfg config.Config, st store.DirectoryStore, gh *github.Client) *AdminHandler {
	if st == nil {
		panic("nil directory store passed to NewAdminHandler")
	}
	return &AdminHandler{Cfg: cfg, Store: st, GitHub: gh}
}

// DataSource handles GET /v1/admin/data-source. The admin editor fetches
// this once per page load to label its save button; the JSON field name
// is the wire contract the editor already speaks.
func (h *AdminHandler) DataSource(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"useSupabase": h.Store.UsesDatabase()})
}

type saveDirectoryReq struct {
	Directory directory.Sections `json:"directory"`
}

// SaveDirectory handles POST /v1/admin/directory. The request carries
// the entire section mapping; the active store replaces its state with
// it wholesale. Last writer wins; there is a single operator. A store
// failure passes the backend's error text through verbatim and nothing
// server-side mutates on failure, so retrying from the editor loses no
// edits.
func (h *AdminHandler) SaveDirectory(c echo.Context) error {
	var req saveDirectoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON"})
	}
	if req.Directory == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "directory is required"})
	}
	ctx := c.Request().Context()
	if err := h.Store.SaveSections(ctx, req.Directory); err != nil {
		if errors.Is(err, github.ErrNotConfigured) {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "GitHub not configured (GITHUB_TOKEN, GITHUB_REPO)"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	entries := 0
	for _, es := range req.Directory {
		entries += len(es)
	}
	_ = queue.PublishAdminAudit(ctx, queue.AdminAuditEvent{
		Action:    "directory.save",
		Backend:   backendName(h.Store),
		Sections:  len(req.Directory),
		Entries:   entries,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

type saveFileReq struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Message string `json:"message"`
}

// SaveFile handles POST /v1/admin/save: commit content as the full
// contents of a repo file, creating or updating it.
func (h *AdminHandler) SaveFile(c echo.Context) error {
	if h.GitHub == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "GitHub not configured (GITHUB_TOKEN, GITHUB_REPO)"})
	}
	var req saveFileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON"})
	}
	if strings.TrimSpace(req.Path) == "" || strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "path and message are required"})
	}
	ctx := c.Request().Context()
	if err := h.GitHub.PutFile(ctx, req.Path, []byte(req.Content), req.Message); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	_ = queue.PublishAdminAudit(ctx, queue.AdminAuditEvent{
		Action:    "file.commit",
		Backend:   "commit",
		Path:      req.Path,
		Message:   req.Message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

type deleteFileReq struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// DeleteFile handles POST /v1/admin/delete. Used when removing a casting
// call so its detail file is removed from the content repo too. The
// status taxonomy is fixed: 401 is produced by the auth middleware, 503
// when GitHub is unconfigured, 400 for a malformed body, 404 when the
// target file is absent (or is a directory), 500 for anything else with
// the API's error text passed through.
func (h *AdminHandler) DeleteFile(c echo.Context) error {
	if h.GitHub == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "GitHub not configured (GITHUB_TOKEN, GITHUB_REPO)"})
	}
	var req deleteFileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON"})
	}
	if strings.TrimSpace(req.Path) == "" || strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "path and message are required"})
	}
	ctx := c.Request().Context()
	if err := h.GitHub.DeleteFile(ctx, req.Path, req.Message); err != nil {
		if errors.Is(err, github.ErrFileNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "File not found or path is a directory"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	_ = queue.PublishAdminAudit(ctx, queue.AdminAuditEvent{
		Action:    "file.delete",
		Backend:   "commit",
		Path:      req.Path,
		Message:   req.Message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// backendName labels the active store for audit events.
func backendName(st store.DirectoryStore) string {
	if st.UsesDatabase() {
		return "database"
	}
	return "commit"
}
