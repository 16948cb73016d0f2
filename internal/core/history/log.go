// Package history keeps the in-memory log of completed study sessions.
// Nothing here is persisted: the log starts empty with every process.
package history

import (
	"sync"
	"time"

	"studyfocus/internal/core/model"
)

// Log is an append-only list of completed sessions.
type Log struct {
	mu      sync.RWMutex
	records []model.CompletedRecord
}

// New returns an empty log.
func New() *Log {
	return &Log{}
}

// Append adds a record.
func (log *Log) Append(record model.CompletedRecord) {
	log.mu.Lock()
	log.records = append(log.records, record)
	log.mu.Unlock()
}

// Snapshot returns a copy of the records, newest first.
func (log *Log) Snapshot() []model.CompletedRecord {
	log.mu.RLock()
	defer log.mu.RUnlock()

	snapshot := make([]model.CompletedRecord, len(log.records))
	for i, record := range log.records {
		snapshot[len(log.records)-1-i] = record
	}
	return snapshot
}

// Len returns the number of records.
func (log *Log) Len() int {
	log.mu.RLock()
	defer log.mu.RUnlock()
	return len(log.records)
}

// TotalTimeSpent sums the time spent across all records.
func (log *Log) TotalTimeSpent() time.Duration {
	log.mu.RLock()
	defer log.mu.RUnlock()

	var total time.Duration
	for _, record := range log.records {
		total += record.TimeSpent
	}
	return total
}
