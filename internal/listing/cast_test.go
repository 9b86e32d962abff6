package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/callboardhq/callboard/internal/model"
)

func castEntries() []model.DirectoryEntry {
	return []model.DirectoryEntry{
		{ID: "zz", Name: "Zoe Zane", Description: "Stage and screen.", Pills: []string{"Non-Union"}},
		{ID: "jd", Name: "Jane Doe", Description: "Film actor.", Pills: []string{"Union", "SAG-Eligible"}},
		{ID: "bs", Name: "Bob Smith", Description: "Often works with Jane on shorts.", Pills: []string{"Non-Union"}},
	}
}

func names(entries []model.DirectoryEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestFilterCast_NoFiltersSortsByName(t *testing.T) {
	got := FilterCast(castEntries(), "", "")
	assert.Equal(t, []string{"Bob Smith", "Jane Doe", "Zoe Zane"}, names(got))
}

func TestFilterCast_SearchMatchesNameOrDescription(t *testing.T) {
	got := FilterCast(castEntries(), "jane", "")
	// Matches Jane Doe by name and Bob Smith by description.
	assert.Equal(t, []string{"Bob Smith", "Jane Doe"}, names(got))
}

func TestFilterCast_SearchIsCaseInsensitiveAndTrimmed(t *testing.T) {
	got := FilterCast(castEntries(), "  ZOE ", "")
	assert.Equal(t, []string{"Zoe Zane"}, names(got))
}

func TestFilterCast_PillIsExactMembership(t *testing.T) {
	got := FilterCast(castEntries(), "", "Union")
	assert.Equal(t, []string{"Jane Doe"}, names(got), `"Union" must not match "Non-Union"`)

	got = FilterCast(castEntries(), "", "Non-Union")
	assert.Equal(t, []string{"Bob Smith", "Zoe Zane"}, names(got))
}

func TestFilterCast_SearchAndPillCombine(t *testing.T) {
	got := FilterCast(castEntries(), "jane", "Non-Union")
	assert.Equal(t, []string{"Bob Smith"}, names(got))
}

func TestFilterCast_NoMatches(t *testing.T) {
	got := FilterCast(castEntries(), "nobody", "")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterCast_DoesNotModifyInput(t *testing.T) {
	in := castEntries()
	FilterCast(in, "", "")
	assert.Equal(t, "Zoe Zane", in[0].Name)
}

func TestPillOptions(t *testing.T) {
	got := PillOptions(castEntries())
	assert.Equal(t, []string{"Non-Union", "SAG-Eligible", "Union"}, got)
}

func TestPillOptions_Empty(t *testing.T) {
	assert.Empty(t, PillOptions(nil))
}
