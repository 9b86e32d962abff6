// This file defines the public directory handlers: the cast page (the
// Talent section with search and pill filters), the crew page (every
// other section in the fixed priority order) and the raw section mapping
// that the admin editor loads.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/callboardhq/callboard/internal/directory"
	"github.com/callboardhq/callboard/internal/listing"
	"github.com/callboardhq/callboard/internal/model"
)

// crewSection pairs a section name with its entries so the crew response
// preserves the priority ordering, which a JSON object cannot.
type crewSection struct {
	Name    string                 `json:"name"`
	Entries []model.DirectoryEntry `json:"entries"`
}

// GetCastDirectory handles GET /v1/directory/cast. Query parameters:
// search (case-insensitive substring on name or description) and pill
// (exact tag membership); both AND, and an empty value passes that axis
// through. Entries come back sorted alphabetically by name, plus the
// distinct pill values for the filter dropdown.
func (h *PublicHandler) GetCastDirectory(c echo.Context) error {
	sections := h.loadSections(c)
	talent := sections[model.TalentSection]
	filtered := listing.FilterCast(talent, c.QueryParam("search"), c.QueryParam("pill"))
	return c.JSON(http.StatusOK, echo.Map{
		"items": filtered,
		"pills": listing.PillOptions(talent),
	})
}

// GetCrewDirectory handles GET /v1/directory/crew. Talent is excluded
// (it belongs to the cast page) and sections follow the fixed crew
// priority order with unknown sections alphabetical after the known
// ones.
func (h *PublicHandler) GetCrewDirectory(c echo.Context) error {
	sections := h.loadSections(c)
	names := listing.CrewSectionNames(sections)
	out := make([]crewSection, 0, len(names))
	for _, name := range names {
		out = append(out, crewSection{Name: name, Entries: sections[name]})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetDirectory handles GET /v1/directory and returns the raw section
// mapping. The admin editor loads from here; the published data file has
// the same shape.
func (h *PublicHandler) GetDirectory(c echo.Context) error {
	return c.JSON(http.StatusOK, h.loadSections(c))
}

// loadSections fetches the mapping from the active backend, degrading to
// an empty directory on failure so every directory page renders (empty)
// instead of erroring.
func (h *PublicHandler) loadSections(c echo.Context) directory.Sections {
	sections, err := h.Directory.LoadSections(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("directory load failed: %v", err)
		return directory.NewSections()
	}
	return sections
}
