// Package queue defines the admin audit events exchanged over the
// message broker and the background consumer that records them.
package queue

// AdminAuditEvent is published after every successful admin write:
// directory saves, generic file commits and file deletions. It carries
// enough context for the audit log without another database query.
type AdminAuditEvent struct {
	Action    string `json:"action"`             // "directory.save", "file.commit", "file.delete"
	Backend   string `json:"backend"`            // "database" or "commit"
	Path      string `json:"path,omitempty"`     // repo path for file actions
	Message   string `json:"message,omitempty"`  // commit message for file actions
	Sections  int    `json:"sections,omitempty"` // section count for directory saves
	Entries   int    `json:"entries,omitempty"`  // entry count for directory saves
	Timestamp string `json:"timestamp"`          // RFC3339 UTC
}
