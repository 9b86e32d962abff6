// This file contains data access for the people directory. The whole
// directory lives in one `directory_entries` table: a section name, a
// position preserving entry order within the section, the entry fields,
// and the pill tags as a JSON column. Reads regroup rows into the
// section mapping; the only write is a full transactional replace, which
// is how the admin editor saves.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"sort"

	"github.com/callboardhq/callboard/internal/directory"
	"github.com/callboardhq/callboard/internal/model"
)

// DirectoryRepo manages persistence for directory sections.
type DirectoryRepo struct {
	db *sql.DB
}

// NewDirectoryRepo constructs a DirectoryRepo with the given DB handle.
func NewDirectoryRepo(db *sql.DB) *DirectoryRepo {
	return &DirectoryRepo{db: db}
}

// LoadSections reads every directory row and regroups them into the
// section mapping, ordered by stored position within each section.
func (r *DirectoryRepo) LoadSections(ctx context.Context) (directory.Sections, error) {
	const q = `SELECT section, id, name, pronouns, description, location, link,
                      contact_link, contact_label, pills
               FROM directory_entries
               ORDER BY section, position`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sections := directory.NewSections()
	for rows.Next() {
		var (
			section      string
			e            model.DirectoryEntry
			pronouns     sql.NullString
			location     sql.NullString
			link         sql.NullString
			contactLink  sql.NullString
			contactLabel sql.NullString
			pillsJSON    []byte
		)
		if err := rows.Scan(&section, &e.ID, &e.Name, &pronouns, &e.Description,
			&location, &link, &contactLink, &contactLabel, &pillsJSON); err != nil {
			return nil, err
		}
		e.Pronouns = pronouns.String
		e.Location = location.String
		e.Link = link.String
		e.ContactLink = contactLink.String
		e.ContactLabel = contactLabel.String
		if len(pillsJSON) > 0 {
			_ = json.Unmarshal(pillsJSON, &e.Pills)
		}
		sections[section] = append(sections[section], e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sections, nil
}

// ReplaceSections swaps the entire directory for the given mapping in a
// single transaction: delete everything, insert the new rows, commit.
// Last writer wins; there is no row-level merging. Entry order inside a
// section is recorded in the position column, and sections are inserted
// in sorted name order so repeated saves of the same mapping produce
// identical tables.
func (r *DirectoryRepo) ReplaceSections(ctx context.Context, sections directory.Sections) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM directory_entries`); err != nil {
		return err
	}

	const ins = `INSERT INTO directory_entries
                 (section, position, id, name, pronouns, description, location, link, contact_link, contact_label, pills)
                 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for pos, e := range sections[name] {
			var pillsJSON any
			if len(e.Pills) > 0 {
				b, mErr := json.Marshal(e.Pills)
				if mErr != nil {
					err = mErr
					return err
				}
				pillsJSON = b
			}
			if _, err = tx.ExecContext(ctx, ins,
				name, pos, e.ID, e.Name,
				nullIfEmpty(e.Pronouns), e.Description,
				nullIfEmpty(e.Location), nullIfEmpty(e.Link),
				nullIfEmpty(e.ContactLink), nullIfEmpty(e.ContactLabel),
				pillsJSON,
			); err != nil {
				return err
			}
		}
	}
	return nil
}

// nullIfEmpty maps "" to SQL NULL so optional columns stay nullable.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
