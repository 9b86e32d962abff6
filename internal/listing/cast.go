package listing

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/callboardhq/callboard/internal/model"
)

// nameCollator performs the locale-aware comparison used for the
// alphabetical cast list. Collation is considerably slower than a plain
// byte compare but matches how names with accents are expected to sort.
var nameCollator = collate.New(language.AmericanEnglish, collate.Loose)

// FilterCast applies the cast page filters to entries: a case-insensitive
// substring match of search against name OR description, ANDed with exact
// membership of pill in the entry's tag list. An empty search term or an
// empty pill is a pass-through on that axis. The result is a fresh slice
// sorted alphabetically by name; the input is not modified.
func FilterCast(entries []model.DirectoryEntry, search, pill string) []model.DirectoryEntry {
	q := strings.ToLower(strings.TrimSpace(search))
	out := make([]model.DirectoryEntry, 0, len(entries))
	for _, e := range entries {
		if q != "" {
			name := strings.ToLower(e.Name)
			desc := strings.ToLower(e.Description)
			if !strings.Contains(name, q) && !strings.Contains(desc, q) {
				continue
			}
		}
		if pill != "" && !hasPill(e.Pills, pill) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return nameCollator.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// PillOptions returns the distinct pill values across entries, sorted
// with the same collator, for populating the filter dropdown.
func PillOptions(entries []model.DirectoryEntry) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, e := range entries {
		for _, p := range e.Pills {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return nameCollator.CompareString(out[i], out[j]) < 0
	})
	return out
}

// hasPill checks exact membership: "Union" does not match "Non-Union".
func hasPill(pills []string, want string) bool {
	for _, p := range pills {
		if p == want {
			return true
		}
	}
	return false
}
