package helpers

import (
	"context"
	"sync"

	"github.com/harborlane/freightflow-go/internal/application/common"
)

// MemoryBookingLog is an in-memory booking log for tests. Set AppendErr to
// simulate a persistence failure.
type MemoryBookingLog struct {
	mu        sync.Mutex
	entries   []*common.BookingLogEntry
	AppendErr error
}

func NewMemoryBookingLog() *MemoryBookingLog {
	return &MemoryBookingLog{}
}

func (l *MemoryBookingLog) Append(ctx context.Context, entry *common.BookingLogEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.AppendErr != nil {
		return l.AppendErr
	}
	l.entries = append(l.entries, entry)
	return nil
}

func (l *MemoryBookingLog) List(ctx context.Context, limit int) ([]*common.BookingLogEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*common.BookingLogEntry, len(l.entries))
	copy(out, l.entries)
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

// Entries returns a snapshot of everything appended so far
func (l *MemoryBookingLog) Entries() []*common.BookingLogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*common.BookingLogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
