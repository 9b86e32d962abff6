package listing

import (
	"sort"

	"github.com/callboardhq/callboard/internal/model"
)

// CrewSectionOrder is the fixed priority order for crew sections on both
// the public crew page and the admin crew editor. Sections not in this
// list sort alphabetically after the known ones.
var CrewSectionOrder = []string{
	"Directors",
	"Writers",
	"Camera Operators",
	"Photographers",
	"PAs",
	"Props",
	"Stunt Coordinators",
	"Intimacy Coordinators",
	"Costume",
	"Editors",
	"Gaffer",
	"Grips",
	"Hair & Make-Up",
	"Production Design",
	"Script Supervisor",
	"Sound",
}

var crewSectionRank = func() map[string]int {
	m := make(map[string]int, len(CrewSectionOrder))
	for i, name := range CrewSectionOrder {
		m[name] = i
	}
	return m
}()

// CrewSectionNames returns the section names of the mapping excluding
// Talent, ordered by the fixed priority list with unknown sections
// alphabetical at the end. Talent is rendered by the cast-only page and
// never appears in crew views.
func CrewSectionNames(sections map[string][]model.DirectoryEntry) []string {
	names := make([]string, 0, len(sections))
	for name := range sections {
		if name == model.TalentSection {
			continue
		}
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return CompareCrewSections(names[i], names[j]) < 0
	})
	return names
}

// CompareCrewSections orders two section names: both known → priority
// order, one known → known first, neither → alphabetical.
func CompareCrewSections(a, b string) int {
	ra, aKnown := crewSectionRank[a]
	rb, bKnown := crewSectionRank[b]
	switch {
	case aKnown && bKnown:
		return ra - rb
	case aKnown:
		return -1
	case bKnown:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
