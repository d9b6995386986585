package quote_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborlane/freightflow-go/internal/domain/location"
	"github.com/harborlane/freightflow-go/internal/domain/quote"
	"github.com/harborlane/freightflow-go/internal/domain/shared"
)

func newTestDraft(t *testing.T) *quote.Draft {
	t.Helper()
	clock := shared.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	return quote.NewDraft(clock)
}

func TestDraft_RouteValidation(t *testing.T) {
	d := newTestDraft(t)

	// Both endpoints required
	err := d.ValidateRoute()
	require.Error(t, err)

	d.SetOrigin("Shanghai")
	err = d.ValidateRoute()
	require.Error(t, err)

	// Same-location routes are rejected with both inputs in the message
	d.SetDestination("Port of Shanghai")
	err = d.ValidateRoute()
	require.Error(t, err)
	var sameLoc *shared.SameLocationError
	require.ErrorAs(t, err, &sameLoc)
	assert.Contains(t, err.Error(), "Shanghai")
	assert.Contains(t, err.Error(), "Port of Shanghai")

	d.SetDestination("Los Angeles")
	assert.NoError(t, d.ValidateRoute())
}

func TestDraft_ResolveReplacesFreeText(t *testing.T) {
	d := newTestDraft(t)

	d.SetOrigin("shangh")
	d.ResolveOrigin(location.Place{Name: "Shanghai", CountryCode: "CN"})

	assert.Equal(t, "Shanghai", d.Origin.Value())
	require.NotNil(t, d.Origin.Resolved)
	assert.Equal(t, "CN", d.Origin.Resolved.CountryCode)

	// Typing again drops the resolution
	d.SetOrigin("ning")
	assert.Nil(t, d.Origin.Resolved)
	assert.Equal(t, "ning", d.Origin.Value())
}

func TestDraft_SnapshotKeyTracksRouteAndCargoOnly(t *testing.T) {
	d := newTestDraft(t)
	d.SetOrigin("Shanghai")
	d.SetDestination("Los Angeles")
	require.NoError(t, d.Cargo.UseContainer(quote.ContainerSize40, 1))

	before := d.SnapshotKey()

	// Billing-only fields do not invalidate fetched quotes
	d.Services.Insurance = true
	d.Incoterm = quote.IncotermFOB
	assert.Equal(t, before, d.SnapshotKey())

	// Cargo changes do
	require.NoError(t, d.Cargo.UseContainer(quote.ContainerSize40HC, 1))
	assert.NotEqual(t, before, d.SnapshotKey())

	// Route changes do
	key40HC := d.SnapshotKey()
	d.SetDestination("Long Beach")
	assert.NotEqual(t, key40HC, d.SnapshotKey())
}

func TestDraft_Reset(t *testing.T) {
	d := newTestDraft(t)
	id := d.ID()

	d.SetOrigin("Shanghai")
	d.SetDestination("Los Angeles")
	d.Services.Customs = true

	d.Reset()

	assert.Equal(t, id, d.ID())
	assert.True(t, d.Origin.IsEmpty())
	assert.True(t, d.Destination.IsEmpty())
	assert.False(t, d.Services.Customs)
	assert.Equal(t, quote.PartyAgent, d.PortChargesCoveredBy)
}
