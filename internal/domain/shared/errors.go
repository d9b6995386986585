package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Route errors

type RouteError struct {
	*DomainError
}

func NewRouteError(message string) *RouteError {
	return &RouteError{DomainError: &DomainError{Message: message}}
}

// SameLocationError blocks a route whose origin and destination normalize
// to the same real-world place. The message names both inputs so the caller
// can surface it directly.
type SameLocationError struct {
	*RouteError
	Origin      string
	Destination string
}

func NewSameLocationError(origin, destination string) *SameLocationError {
	return &SameLocationError{
		RouteError: NewRouteError(
			fmt.Sprintf("origin %q and destination %q resolve to the same location", origin, destination),
		),
		Origin:      origin,
		Destination: destination,
	}
}

// Rate fetch errors

// FetchFailedError marks a quotes request that errored at the transport or
// protocol level. It is distinct from a successful fetch returning zero
// quotes, which is not an error at all.
type FetchFailedError struct {
	*DomainError
	Cause error
}

func NewFetchFailedError(cause error) *FetchFailedError {
	return &FetchFailedError{
		DomainError: &DomainError{Message: fmt.Sprintf("rate fetch failed: %v", cause)},
		Cause:       cause,
	}
}

func (e *FetchFailedError) Unwrap() error {
	return e.Cause
}

// Booking errors

// StaleSelectionError rejects a commit whose selected quote does not belong
// to the most recently fetched quote collection. Raised before any network
// call is made.
type StaleSelectionError struct {
	*DomainError
	QuoteID string
}

func NewStaleSelectionError(quoteID string) *StaleSelectionError {
	return &StaleSelectionError{
		DomainError: &DomainError{
			Message: fmt.Sprintf("quote %s is not part of the latest rate results; re-select after refreshing", quoteID),
		},
		QuoteID: quoteID,
	}
}

// CommitDeclinedError marks a booking request the backend answered with
// success=false or an empty reference.
type CommitDeclinedError struct {
	*DomainError
	QuoteID string
}

func NewCommitDeclinedError(quoteID string) *CommitDeclinedError {
	return &CommitDeclinedError{
		DomainError: &DomainError{Message: fmt.Sprintf("booking for quote %s was declined by the backend", quoteID)},
		QuoteID:     quoteID,
	}
}
