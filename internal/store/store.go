// Package store provides the two interchangeable persistence backends for
// the directory: the database store (directory rows in MySQL) and the
// commit-file store (a JSON file committed through the GitHub contents
// API). The active backend is selected once at startup from config, not
// per request; the admin UI only learns which one is active so it can
// label the save button.
package store

import (
	"context"

	"github.com/callboardhq/callboard/internal/directory"
)

// DirectoryStore is the persistence strategy for the section mapping.
// Both implementations satisfy directory.Backend as well, so the editor
// can be handed either one directly.
type DirectoryStore interface {
	// LoadSections returns the current mapping.
	LoadSections(ctx context.Context) (directory.Sections, error)
	// SaveSections replaces the stored mapping with s. Last writer wins;
	// there is no conflict detection.
	SaveSections(ctx context.Context, s directory.Sections) error
	// UsesDatabase reports whether this store writes to the database
	// (true) or to a committed file (false).
	UsesDatabase() bool
}
