package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EventType represents the kind of collection mutation being recorded
type EventType string

const (
	EventAdd    EventType = "add"
	EventUpdate EventType = "update"
	EventDelete EventType = "delete"
	EventNote   EventType = "note"
	EventImport EventType = "import"
	EventExport EventType = "export"
)

// Event represents a single audit record
type Event struct {
	Timestamp time.Time         `json:"ts"`
	Event     EventType         `json:"event"`
	User      string            `json:"user,omitempty"`
	Title     string            `json:"title,omitempty"`
	Outcome   string            `json:"outcome,omitempty"`
	Score     float64           `json:"score,omitempty"`
	Error     string            `json:"error,omitempty"`
	Extra     map[string]string `json:"extra,omitempty"`
}

// AuditLogger appends collection mutations to a JSONL file
type AuditLogger struct {
	file    *os.File
	encoder *json.Encoder
	mu      sync.Mutex
	path    string
}

// NewAuditLogger creates an audit logger writing to a timestamped file
// under outputDir
func NewAuditLogger(outputDir string) (*AuditLogger, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	path := filepath.Join(outputDir, fmt.Sprintf("audit-%s.jsonl", timestamp))

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit log: %w", err)
	}

	return &AuditLogger{
		file:    file,
		encoder: json.NewEncoder(file),
		path:    path,
	}, nil
}

// NullLogger returns a logger that silently drops all events
func NullLogger() *AuditLogger {
	return &AuditLogger{}
}

// Path returns the audit file path, or "" for a null logger
func (l *AuditLogger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Log writes an event to the JSONL file
func (l *AuditLogger) Log(event *Event) error {
	if l == nil || l.file == nil {
		return nil // Null logger
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if err := l.encoder.Encode(event); err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	return nil
}

// LogMutation records a mutation with its boolean outcome
func (l *AuditLogger) LogMutation(event EventType, user, title string, applied bool) error {
	outcome := "applied"
	if !applied {
		outcome = "not_found"
	}
	return l.Log(&Event{
		Event:   event,
		User:    user,
		Title:   title,
		Outcome: outcome,
	})
}

// LogAdd records a successful add with the resolved title
func (l *AuditLogger) LogAdd(user, title string) error {
	return l.Log(&Event{
		Event:   EventAdd,
		User:    user,
		Title:   title,
		Outcome: "added",
	})
}

// LogError records a failed operation
func (l *AuditLogger) LogError(event EventType, user, title string, err error) error {
	return l.Log(&Event{
		Event: event,
		User:  user,
		Title: title,
		Error: err.Error(),
	})
}

// Close closes the underlying file
func (l *AuditLogger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}
