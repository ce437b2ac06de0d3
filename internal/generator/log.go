package generator

import (
	"sync"
	"time"
)

const maxErrorEntries = 100

// ErrorEntry records a single generation failure.
type ErrorEntry struct {
	Timestamp time.Time `json:"timestamp"`
	CaseID    string    `json:"case_id"`
	Message   string    `json:"message"`
}

// ErrorLog is a bounded, concurrency-safe ring of recent generation
// failures. Once full, recording drops the oldest entry.
type ErrorLog struct {
	mu      sync.Mutex
	entries []ErrorEntry
}

// NewErrorLog creates an empty error log.
func NewErrorLog() *ErrorLog {
	return &ErrorLog{}
}

// Record appends a failure entry, evicting the oldest beyond capacity.
func (l *ErrorLog) Record(caseID, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, ErrorEntry{
		Timestamp: time.Now().UTC(),
		CaseID:    caseID,
		Message:   message,
	})

	if len(l.entries) > maxErrorEntries {
		l.entries = l.entries[len(l.entries)-maxErrorEntries:]
	}
}

// Entries returns a copy of the recorded failures, oldest first.
func (l *ErrorLog) Entries() []ErrorEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]ErrorEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
