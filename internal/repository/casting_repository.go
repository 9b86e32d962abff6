// This file contains data access for casting calls. A casting call is one
// row in the `casting_calls` table with its roles stored as a JSON column;
// the public surface only ever reads them. Rows are authored through the
// admin file-commit path and imported by external tooling, so there are no
// insert or update methods here.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/callboardhq/callboard/internal/model"
)

// CastingRepo manages read access to casting calls.
type CastingRepo struct {
	db *sql.DB
}

// NewCastingRepo constructs a CastingRepo with the given DB handle.
func NewCastingRepo(db *sql.DB) *CastingRepo {
	return &CastingRepo{db: db}
}

// listColumns are the fields needed by the listing page; the heavy HTML
// columns (description, submission_details) and the roles JSON are only
// loaded for the detail view.
const listColumns = `slug, title, date, audition_deadline, location, pay, type, union_status, exclusive, under18, role_count, archived`

// List returns every casting call ordered by post date descending. Ties
// retain the database's source order; no secondary sort key is applied.
// An empty table yields an empty slice and nil error.
func (r *CastingRepo) List(ctx context.Context) ([]model.CastingCall, error) {
	const q = `SELECT ` + listColumns + ` FROM casting_calls ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.CastingCall, 0)
	for rows.Next() {
		c, err := scanListRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetBySlug returns one casting call with its full detail fields and
// roles. It returns ErrCastingCallNotFound when no row matches.
func (r *CastingRepo) GetBySlug(ctx context.Context, slug string) (*model.CastingCall, error) {
	const q = `SELECT slug, title, date, audition_deadline, location, director, filming_dates,
                      description, submission_details, source_link, pay, type, union_status,
                      exclusive, under18, role_count, archived, roles
               FROM casting_calls WHERE slug = ?`
	var (
		c         model.CastingCall
		date      sql.NullTime
		deadline  sql.NullTime
		location  sql.NullString
		director  sql.NullString
		filming   sql.NullString
		desc      sql.NullString
		subDetail sql.NullString
		srcLink   sql.NullString
		pay       sql.NullString
		typ       sql.NullString
		union     sql.NullString
		rolesJSON []byte
	)
	err := r.db.QueryRowContext(ctx, q, slug).Scan(
		&c.Slug, &c.Title, &date, &deadline, &location, &director, &filming,
		&desc, &subDetail, &srcLink, &pay, &typ, &union,
		&c.Exclusive, &c.Under18, &c.RoleCount, &c.Archived, &rolesJSON,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCastingCallNotFound
		}
		return nil, err
	}
	c.Date = isoOrEmpty(date)
	c.AuditionDeadline = isoOrEmpty(deadline)
	c.Location = location.String
	c.Director = director.String
	c.FilmingDates = filming.String
	c.Description = desc.String
	c.SubmissionDetails = subDetail.String
	c.SourceLink = srcLink.String
	c.Pay = pay.String
	c.Type = typ.String
	c.Union = union.String
	if len(rolesJSON) > 0 {
		// A malformed roles blob should not sink the whole detail page;
		// the call renders without its role list.
		_ = json.Unmarshal(rolesJSON, &c.Roles)
	}
	return &c, nil
}

// scanListRow scans one row of listColumns into a CastingCall.
func scanListRow(rows *sql.Rows) (model.CastingCall, error) {
	var (
		c        model.CastingCall
		date     sql.NullTime
		deadline sql.NullTime
		location sql.NullString
		pay      sql.NullString
		typ      sql.NullString
		union    sql.NullString
	)
	err := rows.Scan(
		&c.Slug, &c.Title, &date, &deadline, &location, &pay, &typ, &union,
		&c.Exclusive, &c.Under18, &c.RoleCount, &c.Archived,
	)
	if err != nil {
		return model.CastingCall{}, err
	}
	c.Date = isoOrEmpty(date)
	c.AuditionDeadline = isoOrEmpty(deadline)
	c.Location = location.String
	c.Pay = pay.String
	c.Type = typ.String
	c.Union = union.String
	return c, nil
}

// isoOrEmpty formats a nullable DATE column as an ISO date string.
func isoOrEmpty(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format("2006-01-02")
}
