package helpers

import (
	"context"
	"sync"

	"github.com/harborlane/freightflow-go/internal/infrastructure/ports"
)

// MockFreightAPI is a configurable in-memory stand-in for the freight
// backend. Every call is recorded so tests can assert on request counts and
// payloads; behavior is overridden per test via the Func fields.
type MockFreightAPI struct {
	mu sync.Mutex

	SearchPortsFunc   func(ctx context.Context, query string) ([]ports.PlaceHit, error)
	FetchQuotesFunc   func(ctx context.Context, req *ports.RateRequest) ([]ports.QuoteData, error)
	CreateBookingFunc func(ctx context.Context, req *ports.BookingRequest) (*ports.BookingResult, error)

	SearchCalls  []string
	FetchCalls   []*ports.RateRequest
	BookingCalls []*ports.BookingRequest
}

// NewMockFreightAPI creates a mock whose defaults succeed with empty results
func NewMockFreightAPI() *MockFreightAPI {
	return &MockFreightAPI{}
}

func (m *MockFreightAPI) SearchPorts(ctx context.Context, query string) ([]ports.PlaceHit, error) {
	m.mu.Lock()
	m.SearchCalls = append(m.SearchCalls, query)
	fn := m.SearchPortsFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, query)
	}
	return []ports.PlaceHit{}, nil
}

func (m *MockFreightAPI) FetchQuotes(ctx context.Context, req *ports.RateRequest) ([]ports.QuoteData, error) {
	m.mu.Lock()
	m.FetchCalls = append(m.FetchCalls, req)
	fn := m.FetchQuotesFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, req)
	}
	return []ports.QuoteData{}, nil
}

func (m *MockFreightAPI) CreateBooking(ctx context.Context, req *ports.BookingRequest) (*ports.BookingResult, error) {
	m.mu.Lock()
	m.BookingCalls = append(m.BookingCalls, req)
	fn := m.CreateBookingFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, req)
	}
	return &ports.BookingResult{Success: true, BookingRef: "BKG-TEST-1"}, nil
}

// SearchCount returns how many port searches reached the mock
func (m *MockFreightAPI) SearchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SearchCalls)
}

// FetchCount returns how many quote fetches reached the mock
func (m *MockFreightAPI) FetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.FetchCalls)
}

// BookingCount returns how many booking requests reached the mock
func (m *MockFreightAPI) BookingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.BookingCalls)
}
