package common

import (
	"context"
	"time"
)

// BookingLogEntry is one confirmed booking recorded locally. The backend
// owns the booking of record; this log only feeds the history view.
type BookingLogEntry struct {
	ID          string
	QuoteID     string
	Origin      string
	Destination string
	CarrierName string
	Price       float64
	Currency    string
	BookingRef  string
	CreatedAt   time.Time
}

// BookingLog defines local persistence for confirmed bookings
type BookingLog interface {
	Append(ctx context.Context, entry *BookingLogEntry) error
	List(ctx context.Context, limit int) ([]*BookingLogEntry, error)
}
