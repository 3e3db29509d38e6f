package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"leadgate/internal/model"
)

func testTrail(t *testing.T) *Trail {
	t.Helper()
	return NewTrail(filepath.Join(t.TempDir(), "interaction_audit.json"))
}

func TestTrail_EmptyWhenMissing(t *testing.T) {
	trail := testTrail(t)

	if entries := trail.Entries(); len(entries) != 0 {
		t.Errorf("Expected empty trail for missing file, got %d entries", len(entries))
	}
}

func TestTrail_RecordInteraction(t *testing.T) {
	trail := testTrail(t)

	fixed := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = time.Now }()

	err := trail.RecordInteraction("BUYER", "tell me about emi", "[Residential Sales Expert] EMI details...", false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	entries := trail.Entries()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.Timestamp != "2026-03-14 10:30:00" {
		t.Errorf("Unexpected timestamp: %s", e.Timestamp)
	}
	if e.Role != "BUYER" || e.Query != "tell me about emi" {
		t.Errorf("Unexpected entry: %+v", e)
	}
	if e.ViolationFlag {
		t.Error("Expected violation flag false")
	}
}

func TestTrail_RecordMismatch(t *testing.T) {
	trail := testTrail(t)

	if err := trail.RecordMismatch("9999999999", "BUYER"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	entries := trail.Entries()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.Event != model.EventRoleMismatch {
		t.Errorf("Expected event %s, got %s", model.EventRoleMismatch, e.Event)
	}
	if e.Phone != "9999999999" || e.CurrentRole != "BUYER" {
		t.Errorf("Unexpected entry: %+v", e)
	}
	if !e.ViolationFlag {
		t.Error("Mismatch reports must be flagged for review")
	}
}

func TestTrail_AppendPreservesOrder(t *testing.T) {
	trail := testTrail(t)

	queries := []string{"first", "second", "third"}
	for _, q := range queries {
		if err := trail.RecordInteraction("ENQUIRY", q, "resp", false); err != nil {
			t.Fatalf("append %q: %v", q, err)
		}
	}

	entries := trail.Entries()
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	for i, q := range queries {
		if entries[i].Query != q {
			t.Errorf("Entry %d: expected query %q, got %q", i, q, entries[i].Query)
		}
	}
}

func TestTrail_CorruptFileTreatedAsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "interaction_audit.json")

	if err := os.WriteFile(path, []byte("{not valid json"), 0644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	trail := NewTrail(path)
	if entries := trail.Entries(); len(entries) != 0 {
		t.Errorf("Expected corrupt trail to read as empty, got %d entries", len(entries))
	}

	// An append silently reinitializes the store
	if err := trail.RecordInteraction("BUYER", "q", "r", false); err != nil {
		t.Fatalf("Expected append to succeed over corrupt file, got %v", err)
	}
	if entries := trail.Entries(); len(entries) != 1 {
		t.Errorf("Expected 1 entry after reinit, got %d", len(entries))
	}
}
