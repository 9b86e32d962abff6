package model

// CastingCall represents one listing in the `casting_calls` table. A call
// describes an acting opportunity, its audition deadline and the roles
// being cast. Calls are created, archived and removed only through the
// authoring path (file commits to the content repo); the public API is
// read-only.
//
// Date fields hold ISO dates ("2006-01-02") exactly as stored; parsing
// happens in the listing package where a comparison is actually needed.
// Description and SubmissionDetails carry sanitized HTML produced by the
// authoring tooling.
type CastingCall struct {
	Slug              string        `json:"slug"`
	Title             string        `json:"title"`
	Date              string        `json:"date,omitempty"`
	AuditionDeadline  string        `json:"auditionDeadline,omitempty"`
	Location          string        `json:"location,omitempty"`
	Director          string        `json:"director,omitempty"`
	FilmingDates      string        `json:"filmingDates,omitempty"`
	Description       string        `json:"description,omitempty"`
	SubmissionDetails string        `json:"submissionDetails,omitempty"`
	SourceLink        string        `json:"sourceLink,omitempty"`
	Pay               string        `json:"pay,omitempty"`
	Type              string        `json:"type,omitempty"`
	Union             string        `json:"union,omitempty"`
	Exclusive         bool          `json:"exclusive"`
	Under18           bool          `json:"under18"`
	Archived          bool          `json:"archived"`
	RoleCount         int           `json:"roleCount"`
	Roles             []CastingRole `json:"roles,omitempty"`
}

// CastingRole is one role inside a casting call. Roles are stored as a
// JSON column on the call row and keep their authored order.
type CastingRole struct {
	RoleTitle   string `json:"roleTitle"`
	Description string `json:"description,omitempty"`
	AgeRange    string `json:"ageRange,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Pay         string `json:"pay,omitempty"`
	Type        string `json:"type,omitempty"`
	Union       string `json:"union,omitempty"`
}
