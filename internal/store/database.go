package store

import (
	"context"

	"github.com/callboardhq/callboard/internal/directory"
	"github.com/callboardhq/callboard/internal/repository"
)

// DatabaseDirectoryStore persists the directory to MySQL through the
// directory repository. Saves are a single transactional replace of all
// rows.
type DatabaseDirectoryStore struct {
	repo *repository.DirectoryRepo
}

// NewDatabaseDirectoryStore wraps the given repository.
func NewDatabaseDirectoryStore(repo *repository.DirectoryRepo) *DatabaseDirectoryStore {
	return &DatabaseDirectoryStore{repo: repo}
}

// LoadSections reads the mapping from the directory table.
func (s *DatabaseDirectoryStore) LoadSections(ctx context.Context) (directory.Sections, error) {
	return s.repo.LoadSections(ctx)
}

// SaveSections replaces the directory table contents with the mapping.
func (s *DatabaseDirectoryStore) SaveSections(ctx context.Context, sections directory.Sections) error {
	return s.repo.ReplaceSections(ctx, sections)
}

// UsesDatabase reports true.
func (s *DatabaseDirectoryStore) UsesDatabase() bool { return true }
