package model

// DirectoryEntry represents one person (cast or crew) in the community
// directory. Entries are grouped into named sections such as "Talent" or
// "Directors". The JSON tags match the published directory.json file, so
// the same struct serializes both API responses and the committed data
// file.
//
// Fields:
//  ID           – slug-style identifier, unique within its section.
//  Name         – display name.
//  Pronouns     – optional pronouns shown next to the name.
//  Description  – short bio or credit summary.
//  Location     – optional city/region.
//  Link         – optional portfolio or reel URL.
//  ContactLink  – optional contact URL (e.g. an Instagram profile).
//  ContactLabel – label for ContactLink (e.g. "Instagram").
//  Pills        – short tag labels (union status, skill level) used for
//                 filtering and display.
type DirectoryEntry struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Pronouns     string   `json:"pronouns,omitempty"`
	Description  string   `json:"description"`
	Location     string   `json:"location,omitempty"`
	Link         string   `json:"link,omitempty"`
	ContactLink  string   `json:"contactLink,omitempty"`
	ContactLabel string   `json:"contactLabel,omitempty"`
	Pills        []string `json:"pills,omitempty"`
}

// TalentSection is the directory section rendered by the cast page. The
// crew admin view and the public crew page exclude it.
const TalentSection = "Talent"
