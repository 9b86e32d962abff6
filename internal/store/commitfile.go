package store

import (
	"context"
	"encoding/json"

	"github.com/callboardhq/callboard/internal/directory"
	"github.com/callboardhq/callboard/internal/github"
)

// DefaultDirectoryPath is the repo path of the published directory file.
const DefaultDirectoryPath = "public/data/directory.json"

// defaultCommitMessage labels directory commits made through the admin
// editor.
const defaultCommitMessage = "Admin: update crew directory"

// CommitFileDirectoryStore persists the directory as a JSON file whose
// full contents are committed through the GitHub contents API. The site
// picks the change up on the next deploy, which is the version-controlled
// fallback when no database is configured.
type CommitFileDirectoryStore struct {
	client  *github.Client
	path    string
	message string
}

// NewCommitFileDirectoryStore builds a store writing to path in the
// content repository. Empty path and message fall back to the published
// defaults.
func NewCommitFileDirectoryStore(client *github.Client, path, message string) *CommitFileDirectoryStore {
	if path == "" {
		path = DefaultDirectoryPath
	}
	if message == "" {
		message = defaultCommitMessage
	}
	return &CommitFileDirectoryStore{client: client, path: path, message: message}
}

// LoadSections fetches and decodes the committed directory file. A
// missing file is an empty directory, not an error.
func (s *CommitFileDirectoryStore) LoadSections(ctx context.Context) (directory.Sections, error) {
	if s.client == nil {
		return nil, github.ErrNotConfigured
	}
	fc, err := s.client.GetFile(ctx, s.path)
	if err != nil {
		if err == github.ErrFileNotFound {
			return directory.NewSections(), nil
		}
		return nil, err
	}
	sections := directory.NewSections()
	if err := json.Unmarshal(fc.Content, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// SaveSections serializes the mapping (two-space indent, matching the
// published file) and commits it as the file's full contents.
func (s *CommitFileDirectoryStore) SaveSections(ctx context.Context, sections directory.Sections) error {
	if s.client == nil {
		return github.ErrNotConfigured
	}
	content, err := json.MarshalIndent(sections, "", "  ")
	if err != nil {
		return err
	}
	return s.client.PutFile(ctx, s.path, content, s.message)
}

// UsesDatabase reports false.
func (s *CommitFileDirectoryStore) UsesDatabase() bool { return false }
