package location_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	applocation "github.com/harborlane/freightflow-go/internal/application/location"
	"github.com/harborlane/freightflow-go/internal/domain/quote"
	"github.com/harborlane/freightflow-go/internal/domain/shared"
	"github.com/harborlane/freightflow-go/internal/infrastructure/ports"
	"github.com/harborlane/freightflow-go/test/helpers"
)

const debounce = 500 * time.Millisecond

func newResolver(api *helpers.MockFreightAPI) (*applocation.Resolver, *shared.MockClock) {
	clock := shared.NewMockClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	return applocation.NewResolver(api, clock, debounce, 3), clock
}

func shanghaiHits() []ports.PlaceHit {
	return []ports.PlaceHit{
		{DisplayName: "Shanghai", CountryCode: "CN", PlaceType: "port"},
		{DisplayName: "Shantou", CountryCode: "CN", PlaceType: "port"},
	}
}

func TestResolver_ShortQueryNeverHitsNetwork(t *testing.T) {
	api := helpers.NewMockFreightAPI()
	r, clock := newResolver(api)

	r.Resolve(applocation.FieldOrigin, "Sh")
	clock.Advance(time.Second)
	r.Poll(context.Background())

	assert.Zero(t, api.SearchCount())
	assert.Empty(t, r.Candidates(applocation.FieldOrigin))
}

func TestResolver_ShortQueryClearsPreviousCandidates(t *testing.T) {
	api := helpers.NewMockFreightAPI()
	api.SearchPortsFunc = func(ctx context.Context, q string) ([]ports.PlaceHit, error) {
		return shanghaiHits(), nil
	}
	r, clock := newResolver(api)

	r.Resolve(applocation.FieldOrigin, "Sha")
	clock.Advance(debounce)
	r.Poll(context.Background())
	require.Len(t, r.Candidates(applocation.FieldOrigin), 2)

	// Deleting back below the minimum clears immediately, no network
	r.Resolve(applocation.FieldOrigin, "Sh")
	assert.Empty(t, r.Candidates(applocation.FieldOrigin))
	assert.Equal(t, 1, api.SearchCount())
}

func TestResolver_DebounceOnlyLastKeystrokeFires(t *testing.T) {
	api := helpers.NewMockFreightAPI()
	api.SearchPortsFunc = func(ctx context.Context, q string) ([]ports.PlaceHit, error) {
		return shanghaiHits(), nil
	}
	r, clock := newResolver(api)

	r.Resolve(applocation.FieldOrigin, "Sha")
	clock.Advance(200 * time.Millisecond)
	r.Poll(context.Background())

	r.Resolve(applocation.FieldOrigin, "Shan")
	clock.Advance(200 * time.Millisecond)
	r.Poll(context.Background())

	r.Resolve(applocation.FieldOrigin, "Shang")
	clock.Advance(debounce)
	r.Poll(context.Background())

	require.Equal(t, 1, api.SearchCount())
	assert.Equal(t, []string{"Shang"}, api.SearchCalls)
}

func TestResolver_QuietPeriodMustElapse(t *testing.T) {
	api := helpers.NewMockFreightAPI()
	r, clock := newResolver(api)

	r.Resolve(applocation.FieldOrigin, "Sha")
	clock.Advance(debounce - time.Millisecond)
	r.Poll(context.Background())
	assert.Zero(t, api.SearchCount())

	clock.Advance(time.Millisecond)
	r.Poll(context.Background())
	assert.Equal(t, 1, api.SearchCount())
}

func TestResolver_SupersededResponseIsDiscarded(t *testing.T) {
	api := helpers.NewMockFreightAPI()
	r, clock := newResolver(api)

	// While request A is in flight, a newer keystroke B arrives. A's
	// response lands after B was issued and must not be applied.
	api.SearchPortsFunc = func(ctx context.Context, q string) ([]ports.PlaceHit, error) {
		if q == "Shanghai" {
			r.Resolve(applocation.FieldOrigin, "Ningbo")
			return shanghaiHits(), nil
		}
		return []ports.PlaceHit{{DisplayName: "Ningbo", CountryCode: "CN", PlaceType: "port"}}, nil
	}

	r.Resolve(applocation.FieldOrigin, "Shanghai")
	clock.Advance(debounce)
	r.Poll(context.Background())

	// A resolved but was superseded mid-flight: nothing applied yet
	assert.Empty(t, r.Candidates(applocation.FieldOrigin))

	// B dispatches normally and wins
	clock.Advance(debounce)
	r.Poll(context.Background())
	candidates := r.Candidates(applocation.FieldOrigin)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Ningbo", candidates[0].DisplayName)
}

func TestResolver_LookupFailureIsSoft(t *testing.T) {
	api := helpers.NewMockFreightAPI()
	api.SearchPortsFunc = func(ctx context.Context, q string) ([]ports.PlaceHit, error) {
		return nil, assert.AnError
	}
	r, clock := newResolver(api)

	r.Resolve(applocation.FieldDestination, "Rotterdam")
	clock.Advance(debounce)
	r.Poll(context.Background())

	assert.Empty(t, r.Candidates(applocation.FieldDestination))
}

func TestResolver_SelectWritesCanonicalPlaceAndClears(t *testing.T) {
	api := helpers.NewMockFreightAPI()
	api.SearchPortsFunc = func(ctx context.Context, q string) ([]ports.PlaceHit, error) {
		return shanghaiHits(), nil
	}
	r, clock := newResolver(api)
	draft := quote.NewDraft(clock)
	draft.SetOrigin("shangh")

	r.Resolve(applocation.FieldOrigin, "shangh")
	clock.Advance(debounce)
	r.Poll(context.Background())
	candidates := r.Candidates(applocation.FieldOrigin)
	require.NotEmpty(t, candidates)

	r.Select(draft, applocation.FieldOrigin, candidates[0])

	assert.Equal(t, "Shanghai", draft.Origin.Value())
	require.NotNil(t, draft.Origin.Resolved)
	assert.Equal(t, "CN", draft.Origin.Resolved.CountryCode)
	assert.Empty(t, r.Candidates(applocation.FieldOrigin))
}

func TestResolver_FieldsAreIndependent(t *testing.T) {
	api := helpers.NewMockFreightAPI()
	api.SearchPortsFunc = func(ctx context.Context, q string) ([]ports.PlaceHit, error) {
		return []ports.PlaceHit{{DisplayName: q, CountryCode: "XX", PlaceType: "city"}}, nil
	}
	r, clock := newResolver(api)

	r.Resolve(applocation.FieldOrigin, "Shanghai")
	r.Resolve(applocation.FieldDestination, "Rotterdam")
	clock.Advance(debounce)
	r.Poll(context.Background())

	require.Len(t, r.Candidates(applocation.FieldOrigin), 1)
	require.Len(t, r.Candidates(applocation.FieldDestination), 1)

	// A new origin keystroke does not disturb destination candidates
	r.Resolve(applocation.FieldOrigin, "Sh")
	assert.Empty(t, r.Candidates(applocation.FieldOrigin))
	assert.Len(t, r.Candidates(applocation.FieldDestination), 1)
}

func TestResolver_FlushSkipsRemainingQuietPeriod(t *testing.T) {
	api := helpers.NewMockFreightAPI()
	r, _ := newResolver(api)

	r.Resolve(applocation.FieldOrigin, "Shanghai")
	r.Flush(context.Background())

	assert.Equal(t, 1, api.SearchCount())
}
