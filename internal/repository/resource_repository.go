// This file contains data access for community resources. Resources are
// read-only link entries grouped by category on the resources page.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/callboardhq/callboard/internal/model"
)

// ResourceRepo manages read access to resources.
type ResourceRepo struct {
	db *sql.DB
}

// NewResourceRepo constructs a ResourceRepo with the given DB handle.
func NewResourceRepo(db *sql.DB) *ResourceRepo {
	return &ResourceRepo{db: db}
}

// List returns all resources ordered by category then stored position.
// An empty table yields an empty slice and nil error.
func (r *ResourceRepo) List(ctx context.Context) ([]model.Resource, error) {
	const q = `SELECT id, category, title, description, link, pills
               FROM resources
               ORDER BY category, position`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Resource, 0)
	for rows.Next() {
		var (
			res       model.Resource
			desc      sql.NullString
			link      sql.NullString
			pillsJSON []byte
		)
		if err := rows.Scan(&res.ID, &res.Category, &res.Title, &desc, &link, &pillsJSON); err != nil {
			return nil, err
		}
		res.Description = desc.String
		res.Link = link.String
		if len(pillsJSON) > 0 {
			_ = json.Unmarshal(pillsJSON, &res.Pills)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
