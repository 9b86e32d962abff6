package model

// Resource is one entry on the community resources page: classes,
// theaters, equipment rentals and similar links, grouped by category.
//
// Fields:
//  ID          – slug-style identifier, unique within its category.
//  Category    – grouping header (e.g. "Classes & Training").
//  Title       – display title.
//  Description – short blurb.
//  Link        – outbound URL.
//  Pills       – optional tag labels shown on the card.
type Resource struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Link        string   `json:"link,omitempty"`
	Pills       []string `json:"pills,omitempty"`
}
