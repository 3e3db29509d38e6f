package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"leadgate/internal/model"
)

// timeNow is the clock used for entry timestamps (injectable for tests)
var timeNow = time.Now

// Trail is an append-only JSON audit store. Each append reads the whole
// file, appends one entry, and writes the file back; entries are never
// mutated or deleted. Concurrent writers are not supported.
type Trail struct {
	path string
}

// NewTrail creates a trail bound to the given file path
func NewTrail(path string) *Trail {
	return &Trail{path: path}
}

// Path returns the trail's file path
func (t *Trail) Path() string {
	return t.path
}

// Entries reads all entries from the trail. A missing or corrupt file is
// treated as an empty trail, never an error.
func (t *Trail) Entries() []model.AuditEntry {
	data, err := os.ReadFile(t.path)
	if err != nil {
		return nil
	}

	var entries []model.AuditEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		// Corrupt store: treat as empty, it will be overwritten on
		// the next append
		return nil
	}

	return entries
}

// RecordInteraction appends one query/response interaction
func (t *Trail) RecordInteraction(role, query, response string, violation bool) error {
	return t.append(model.AuditEntry{
		Timestamp:     timeNow().Format("2006-01-02 15:04:05"),
		Role:          role,
		Query:         query,
		Response:      response,
		ViolationFlag: violation,
	})
}

// RecordMismatch appends a role-mismatch report for a phone number.
// Mismatch reports are always flagged for review.
func (t *Trail) RecordMismatch(phone, currentRole string) error {
	return t.append(model.AuditEntry{
		Timestamp:     timeNow().Format("2006-01-02 15:04:05"),
		Phone:         phone,
		Event:         model.EventRoleMismatch,
		CurrentRole:   currentRole,
		ViolationFlag: true,
	})
}

// append performs the read-modify-write cycle for one entry
func (t *Trail) append(entry model.AuditEntry) error {
	entries := t.Entries()
	entries = append(entries, entry)

	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal audit entries: %w", err)
	}

	if err := os.WriteFile(t.path, data, 0644); err != nil {
		return fmt.Errorf("write audit trail: %w", err)
	}

	return nil
}
