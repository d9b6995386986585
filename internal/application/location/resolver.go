package location

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/harborlane/freightflow-go/internal/application/common"
	"github.com/harborlane/freightflow-go/internal/domain/location"
	"github.com/harborlane/freightflow-go/internal/domain/quote"
	"github.com/harborlane/freightflow-go/internal/domain/shared"
	"github.com/harborlane/freightflow-go/internal/infrastructure/ports"
)

const (
	// DefaultDebounce is the quiet period a keystroke burst must outlast
	// before the last query reaches the network
	DefaultDebounce = 500 * time.Millisecond

	// DefaultMinQueryLength is the shortest query that may hit the network
	DefaultMinQueryLength = 3
)

// Field names the draft place field a lookup belongs to. Each field has its
// own candidate list and its own request sequence.
type Field int

const (
	FieldOrigin Field = iota
	FieldDestination
)

func (f Field) String() string {
	if f == FieldOrigin {
		return "origin"
	}
	return "destination"
}

// pendingLookup is a keystroke waiting out its quiet period
type pendingLookup struct {
	query string
	seq   uint64
	due   time.Time
}

// Resolver turns free-text keystrokes into ranked place candidates.
//
// Keystrokes are debounced: only the last one in a burst issues a request.
// Because responses are asynchronous and unordered, every keystroke bumps a
// per-field sequence number and a response is applied only while its
// sequence is still the latest issued: last request wins, not first
// response. Lookup failures are soft: candidates empty out and the user can
// keep typing or enter a value manually.
type Resolver struct {
	api         ports.FreightAPI
	clock       shared.Clock
	debounce    time.Duration
	minQueryLen int

	mu         sync.Mutex
	seq        map[Field]uint64
	pending    map[Field]*pendingLookup
	candidates map[Field][]location.Candidate
}

// NewResolver creates a resolver with the given debounce settings. Zero
// values fall back to the defaults.
func NewResolver(api ports.FreightAPI, clock shared.Clock, debounce time.Duration, minQueryLen int) *Resolver {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if minQueryLen <= 0 {
		minQueryLen = DefaultMinQueryLength
	}
	return &Resolver{
		api:         api,
		clock:       clock,
		debounce:    debounce,
		minQueryLen: minQueryLen,
		seq:         make(map[Field]uint64),
		pending:     make(map[Field]*pendingLookup),
		candidates:  make(map[Field][]location.Candidate),
	}
}

// Resolve registers a keystroke for a field. Queries below the minimum
// length never reach the network and clear the field's candidates
// immediately; anything longer schedules a lookup that dispatches once the
// quiet period elapses with no further keystrokes.
func (r *Resolver) Resolve(field Field, query string) {
	q := strings.TrimSpace(query)

	r.mu.Lock()
	defer r.mu.Unlock()

	// Every keystroke supersedes whatever was pending or in flight
	r.seq[field]++

	if utf8.RuneCountInString(q) < r.minQueryLen {
		r.pending[field] = nil
		r.candidates[field] = nil
		return
	}

	r.pending[field] = &pendingLookup{
		query: q,
		seq:   r.seq[field],
		due:   r.clock.Now().Add(r.debounce),
	}
}

// Poll dispatches any pending lookup whose quiet period has elapsed. The
// driving loop calls this; lookups run synchronously on the caller.
func (r *Resolver) Poll(ctx context.Context) {
	r.dispatch(ctx, false)
}

// Flush dispatches pending lookups immediately, without waiting out the
// remaining quiet period. Used by one-shot callers such as the CLI.
func (r *Resolver) Flush(ctx context.Context) {
	r.dispatch(ctx, true)
}

func (r *Resolver) dispatch(ctx context.Context, force bool) {
	r.mu.Lock()
	due := make(map[Field]*pendingLookup)
	now := r.clock.Now()
	for field, p := range r.pending {
		if p == nil {
			continue
		}
		if force || !p.due.After(now) {
			due[field] = p
			r.pending[field] = nil
		}
	}
	r.mu.Unlock()

	for field, p := range due {
		r.lookup(ctx, field, p)
	}
}

func (r *Resolver) lookup(ctx context.Context, field Field, p *pendingLookup) {
	logger := common.LoggerFromContext(ctx)

	hits, err := r.api.SearchPorts(ctx, p.query)

	r.mu.Lock()
	defer r.mu.Unlock()

	// A newer keystroke was issued while this request was in flight:
	// discard the response rather than applying stale candidates
	if r.seq[field] != p.seq {
		return
	}

	if err != nil {
		// Soft failure: empty the list, let the user type on
		logger.Log("warn", "place lookup failed", map[string]interface{}{
			"field": field.String(),
			"query": p.query,
		})
		r.candidates[field] = nil
		return
	}

	out := make([]location.Candidate, len(hits))
	for i, hit := range hits {
		out[i] = location.Candidate{
			DisplayName: hit.DisplayName,
			CountryCode: hit.CountryCode,
			PlaceType:   hit.PlaceType,
		}
	}
	r.candidates[field] = out
}

// Candidates returns the current candidate list for a field
func (r *Resolver) Candidates(field Field) []location.Candidate {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.candidates[field]
}

// Select commits a candidate to the draft: the field's free text is
// replaced by the canonical place and the candidate list is cleared. Any
// in-flight lookup for the field is invalidated.
func (r *Resolver) Select(draft *quote.Draft, field Field, c location.Candidate) {
	r.mu.Lock()
	r.seq[field]++
	r.pending[field] = nil
	r.candidates[field] = nil
	r.mu.Unlock()

	place := c.Place()
	switch field {
	case FieldOrigin:
		draft.ResolveOrigin(place)
	case FieldDestination:
		draft.ResolveDestination(place)
	}
}
