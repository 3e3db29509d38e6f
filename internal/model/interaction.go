package model

// EventRoleMismatch marks an audit entry recording a caller disputing
// their classified role.
const EventRoleMismatch = "ROLE_MISMATCH_REPORTED"

// AuditEntry is one record in the append-only audit trail. Two shapes
// share this struct: interaction records (Role/Query/Response set) and
// mismatch reports (Phone/Event/CurrentRole set, ViolationFlag true).
// Entries are never mutated or deleted once appended.
type AuditEntry struct {
	Timestamp string `json:"timestamp"`
	Role      string `json:"role,omitempty"`
	Query     string `json:"query,omitempty"`
	Response  string `json:"response,omitempty"`

	Phone       string `json:"phone,omitempty"`
	Event       string `json:"event,omitempty"`
	CurrentRole string `json:"current_role,omitempty"`

	ViolationFlag bool `json:"violation_flag"`
}
