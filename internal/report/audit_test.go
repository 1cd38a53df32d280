package report

import (
	"bufio"
	"encoding/json"
	"os"
	"testing"
)

func TestAuditLoggerWritesJSONL(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewAuditLogger(dir)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	logger.LogAdd("Sara", "Inception")
	logger.LogMutation(EventDelete, "Sara", "Inception", true)
	logger.LogMutation(EventUpdate, "Sara", "Gladiator", false)

	if err := logger.Close(); err != nil {
		t.Fatalf("failed to close logger: %v", err)
	}

	f, err := os.Open(logger.Path())
	if err != nil {
		t.Fatalf("failed to open audit log: %v", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Event
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("invalid JSONL line: %v", err)
		}
		events = append(events, e)
	}

	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	if events[0].Event != EventAdd || events[0].Outcome != "added" {
		t.Errorf("unexpected first event: %+v", events[0])
	}
	if events[1].Event != EventDelete || events[1].Outcome != "applied" {
		t.Errorf("unexpected second event: %+v", events[1])
	}
	if events[2].Outcome != "not_found" {
		t.Errorf("expected 'not_found' outcome, got %q", events[2].Outcome)
	}

	for _, e := range events {
		if e.Timestamp.IsZero() {
			t.Error("event written without timestamp")
		}
		if e.User != "Sara" {
			t.Errorf("expected user 'Sara', got %q", e.User)
		}
	}
}

func TestNullLoggerIsSafe(t *testing.T) {
	logger := NullLogger()

	if err := logger.LogAdd("Sara", "Inception"); err != nil {
		t.Errorf("null logger returned error: %v", err)
	}
	if logger.Path() != "" {
		t.Errorf("expected empty path, got %q", logger.Path())
	}
	if err := logger.Close(); err != nil {
		t.Errorf("null close returned error: %v", err)
	}

	// A nil logger must also be a no-op
	var nilLogger *AuditLogger
	if err := nilLogger.LogAdd("Sara", "Inception"); err != nil {
		t.Errorf("nil logger returned error: %v", err)
	}
}
