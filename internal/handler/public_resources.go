// This file defines the public resources handler: community links
// grouped by category.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/callboardhq/callboard/internal/model"
)

// resourceCategory pairs a category name with its resources, preserving
// the category ordering from the query.
type resourceCategory struct {
	Name      string           `json:"name"`
	Resources []model.Resource `json:"resources"`
}

// GetResources handles GET /v1/resources. Rows arrive ordered by
// category then position and are regrouped here; a database failure
// degrades to an empty page.
func (h *PublicHandler) GetResources(c echo.Context) error {
	rows, err := h.ResourceRepo.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("resource list failed: %v", err)
		rows = nil
	}
	out := make([]resourceCategory, 0)
	for _, r := range rows {
		if n := len(out); n > 0 && out[n-1].Name == r.Category {
			out[n-1].Resources = append(out[n-1].Resources, r)
			continue
		}
		out = append(out, resourceCategory{Name: r.Category, Resources: []model.Resource{r}})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}
