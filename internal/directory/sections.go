// Package directory holds the in-memory directory state edited by the
// admin surface: a mapping from section name ("Directors", "Talent") to an
// ordered list of entries, plus the editor that loads and saves it. All
// mutation helpers are local state transforms; nothing here touches the
// network.
package directory

import (
	"errors"
	"strings"

	"github.com/callboardhq/callboard/internal/model"
)

// Sections maps a section name to its ordered entries. The zero value is
// not usable; construct with NewSections or decode from JSON.
type Sections map[string][]model.DirectoryEntry

// ErrSectionExists is returned by AddSection when the trimmed name is
// already a key in the mapping (case-sensitive match).
var ErrSectionExists = errors.New("section already exists")

// ErrEmptySectionName is returned by AddSection when the name is empty
// after trimming.
var ErrEmptySectionName = errors.New("section name is required")

// NewSections returns an empty mapping.
func NewSections() Sections {
	return Sections{}
}

// Clone returns a deep copy. The editor keeps a clone as its saved
// baseline so a failed save never leaks partial state.
func (s Sections) Clone() Sections {
	out := make(Sections, len(s))
	for name, entries := range s {
		cp := make([]model.DirectoryEntry, len(entries))
		copy(cp, entries)
		for i := range cp {
			if cp[i].Pills != nil {
				pills := make([]string, len(cp[i].Pills))
				copy(pills, cp[i].Pills)
				cp[i].Pills = pills
			}
		}
		out[name] = cp
	}
	return out
}

// EntryPatch carries a partial entry update. Nil fields are left
// untouched; non-nil fields replace the current value. Pills replaces the
// whole tag list when set.
type EntryPatch struct {
	ID           *string
	Name         *string
	Pronouns     *string
	Description  *string
	Location     *string
	Link         *string
	ContactLink  *string
	ContactLabel *string
	Pills        []string
}

// UpdateEntry shallow-merges patch into the entry at (section, index).
// Unknown sections and out-of-range indexes are silently ignored so a
// stale edit form can never corrupt the mapping.
func (s Sections) UpdateEntry(section string, index int, patch EntryPatch) {
	entries, ok := s[section]
	if !ok || index < 0 || index >= len(entries) {
		return
	}
	e := &entries[index]
	if patch.ID != nil {
		e.ID = *patch.ID
	}
	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.Pronouns != nil {
		e.Pronouns = *patch.Pronouns
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Location != nil {
		e.Location = *patch.Location
	}
	if patch.Link != nil {
		e.Link = *patch.Link
	}
	if patch.ContactLink != nil {
		e.ContactLink = *patch.ContactLink
	}
	if patch.ContactLabel != nil {
		e.ContactLabel = *patch.ContactLabel
	}
	if patch.Pills != nil {
		e.Pills = patch.Pills
	}
}

// AddEntry appends entry to the named section. The entry is rejected as a
// silent no-op when id, name or description is empty after trimming; the
// admin form disables submission in the same cases, so there is no error
// to surface. Whitespace around the required fields is trimmed before the
// append.
func (s Sections) AddEntry(section string, entry model.DirectoryEntry) {
	entry.ID = strings.TrimSpace(entry.ID)
	entry.Name = strings.TrimSpace(entry.Name)
	entry.Description = strings.TrimSpace(entry.Description)
	if entry.ID == "" || entry.Name == "" || entry.Description == "" {
		return
	}
	s[section] = append(s[section], entry)
}

// RemoveEntry deletes the entry at (section, index). A section left with
// zero entries is removed from the mapping entirely: empty sections do
// not persist. Invalid coordinates are ignored.
func (s Sections) RemoveEntry(section string, index int) {
	entries, ok := s[section]
	if !ok || index < 0 || index >= len(entries) {
		return
	}
	entries = append(entries[:index:index], entries[index+1:]...)
	if len(entries) == 0 {
		delete(s, section)
		return
	}
	s[section] = entries
}

// AddSection creates a new empty section. It returns ErrEmptySectionName
// for a blank name and ErrSectionExists when the exact name is already
// present; callers surface the error text inline.
func (s Sections) AddSection(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptySectionName
	}
	if _, ok := s[trimmed]; ok {
		return ErrSectionExists
	}
	s[trimmed] = []model.DirectoryEntry{}
	return nil
}

// RemoveSection deletes the section and all its entries. Confirmation is
// a UI concern; at this layer removal is unconditional.
func (s Sections) RemoveSection(name string) {
	delete(s, name)
}
