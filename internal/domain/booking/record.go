package booking

import (
	"fmt"
	"time"

	"github.com/harborlane/freightflow-go/internal/domain/shared"
)

// Record is the payload submitted to the backend. It echoes the exact
// fields of the selected quote verbatim rather than recomputing them, so
// the price the user saw is the price that gets booked.
type Record struct {
	QuoteID     string
	Origin      string
	Destination string
	CarrierName string
	Price       float64
	Currency    string
}

// Status is the state of a commit attempt in its lifecycle
type Status string

const (
	// StatusPending indicates the attempt was created but not yet sent
	StatusPending Status = "PENDING"

	// StatusSubmitting indicates the booking request is in flight
	StatusSubmitting Status = "SUBMITTING"

	// StatusConfirmed indicates the backend issued a booking reference
	StatusConfirmed Status = "CONFIRMED"

	// StatusFailed indicates the request failed or was declined
	StatusFailed Status = "FAILED"
)

// Attempt tracks one booking commit through the
// PENDING → SUBMITTING → CONFIRMED/FAILED lifecycle.
//
// FAILED is terminal-but-recoverable: Submit() is legal again from FAILED,
// which is the manual-retry path. Nothing in the engine retries
// automatically, since a duplicate submission risks a duplicate booking.
// CONFIRMED is fully terminal.
type Attempt struct {
	record     Record
	status     Status
	bookingRef string
	lastError  error
	createdAt  time.Time
	updatedAt  time.Time
	clock      shared.Clock
}

// NewAttempt creates a pending attempt for the given record
func NewAttempt(record Record, clock shared.Clock) *Attempt {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	now := clock.Now()
	return &Attempt{
		record:    record,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
		clock:     clock,
	}
}

// Record returns the payload this attempt submits
func (a *Attempt) Record() Record {
	return a.record
}

// Status returns the current lifecycle status
func (a *Attempt) Status() Status {
	return a.status
}

// BookingRef returns the server-issued reference (empty until confirmed)
func (a *Attempt) BookingRef() string {
	return a.bookingRef
}

// LastError returns the error recorded by the most recent failure
func (a *Attempt) LastError() error {
	return a.lastError
}

// CreatedAt returns when the attempt was created
func (a *Attempt) CreatedAt() time.Time {
	return a.createdAt
}

// Submit transitions from PENDING or FAILED to SUBMITTING
func (a *Attempt) Submit() error {
	if a.status != StatusPending && a.status != StatusFailed {
		return fmt.Errorf("cannot submit from %s state", a.status)
	}
	a.status = StatusSubmitting
	a.updatedAt = a.clock.Now()
	return nil
}

// Confirm transitions from SUBMITTING to CONFIRMED with the server-issued
// reference. A blank reference is never accepted: a commit either yields a
// real reference or fails explicitly.
func (a *Attempt) Confirm(bookingRef string) error {
	if a.status != StatusSubmitting {
		return fmt.Errorf("cannot confirm from %s state", a.status)
	}
	if bookingRef == "" {
		return shared.NewValidationError("bookingRef", "cannot be empty")
	}
	a.status = StatusConfirmed
	a.bookingRef = bookingRef
	a.updatedAt = a.clock.Now()
	return nil
}

// Fail transitions from SUBMITTING to FAILED, recording the cause
func (a *Attempt) Fail(err error) error {
	if a.status != StatusSubmitting {
		return fmt.Errorf("cannot fail from %s state", a.status)
	}
	a.status = StatusFailed
	a.lastError = err
	a.updatedAt = a.clock.Now()
	return nil
}

// IsFinished reports whether the attempt reached a resting state
func (a *Attempt) IsFinished() bool {
	return a.status == StatusConfirmed || a.status == StatusFailed
}
