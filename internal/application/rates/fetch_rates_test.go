package rates_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apprates "github.com/harborlane/freightflow-go/internal/application/rates"
	"github.com/harborlane/freightflow-go/internal/domain/quote"
	"github.com/harborlane/freightflow-go/internal/domain/rates"
	"github.com/harborlane/freightflow-go/internal/domain/shared"
	"github.com/harborlane/freightflow-go/internal/infrastructure/ports"
	"github.com/harborlane/freightflow-go/test/helpers"
)

func routedDraft(t *testing.T) *quote.Draft {
	t.Helper()
	d := quote.NewDraft(shared.NewMockClock(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)))
	d.SetOrigin("Shanghai")
	d.SetDestination("Los Angeles")
	require.NoError(t, d.Cargo.UseContainer(quote.ContainerSize40, 1))
	return d
}

func sampleQuotes() []ports.QuoteData {
	return []ports.QuoteData{
		{ID: "q-slow", CarrierName: "CMA CGM", Price: 900, Currency: "USD", TransitDays: 30},
		{ID: "q-best", CarrierName: "Maersk", Price: 1000, Currency: "USD", TransitDays: 10},
		{ID: "q-fast", CarrierName: "ONE", Price: 1200, Currency: "USD", TransitDays: 9},
	}
}

func TestFetchRatesHandler_RanksAndFilters(t *testing.T) {
	api := helpers.NewMockFreightAPI()
	api.FetchQuotesFunc = func(ctx context.Context, req *ports.RateRequest) ([]ports.QuoteData, error) {
		return sampleQuotes(), nil
	}
	handler := apprates.NewFetchRatesHandler(api)

	resp, err := handler.Handle(context.Background(), &apprates.FetchRatesCommand{
		Draft:    routedDraft(t),
		Filter:   rates.Filter{MaxTransitDays: 20},
		Mode:     rates.RankBest,
		Sequence: 1,
	})
	require.NoError(t, err)

	set := resp.(*apprates.FetchRatesResponse).Set
	require.Len(t, set.Quotes, 2)
	// q-slow excluded by the ceiling; best score puts q-best (10000)
	// ahead of q-fast (10800)
	assert.Equal(t, "q-best", set.Quotes[0].ID)
	assert.Equal(t, "q-fast", set.Quotes[1].ID)
	assert.Equal(t, uint64(1), set.Sequence)
}

func TestFetchRatesHandler_RequestCarriesRouteAndCargoOnly(t *testing.T) {
	api := helpers.NewMockFreightAPI()
	handler := apprates.NewFetchRatesHandler(api)

	d := routedDraft(t)
	// Billing-side fields must not leak into the fetch key
	d.Services.Insurance = true
	d.Incoterm = quote.IncotermCIF
	d.PortChargesCoveredBy = quote.PartySupplier

	_, err := handler.Handle(context.Background(), &apprates.FetchRatesCommand{
		Draft: d,
		Mode:  rates.RankBest,
	})
	require.NoError(t, err)

	require.Equal(t, 1, api.FetchCount())
	req := api.FetchCalls[0]
	assert.Equal(t, "Shanghai", req.Origin)
	assert.Equal(t, "Los Angeles", req.Destination)
	assert.Equal(t, "fullContainer", req.CargoType)
	assert.Equal(t, "40", req.ContainerSize)
	assert.Equal(t, 1, req.Quantity)
	assert.Zero(t, req.WeightKg)
}

func TestFetchRatesHandler_LooseCargoFields(t *testing.T) {
	api := helpers.NewMockFreightAPI()
	handler := apprates.NewFetchRatesHandler(api)

	d := routedDraft(t)
	require.NoError(t, d.Cargo.UseLoose(850, 3.2))

	_, err := handler.Handle(context.Background(), &apprates.FetchRatesCommand{Draft: d, Mode: rates.RankBest})
	require.NoError(t, err)

	req := api.FetchCalls[0]
	assert.Equal(t, "loose", req.CargoType)
	assert.Equal(t, 850.0, req.WeightKg)
	assert.Equal(t, 3.2, req.VolumeCbm)
	assert.Empty(t, req.ContainerSize)
}

func TestFetchRatesHandler_EmptyResultIsSuccess(t *testing.T) {
	api := helpers.NewMockFreightAPI()
	handler := apprates.NewFetchRatesHandler(api)

	resp, err := handler.Handle(context.Background(), &apprates.FetchRatesCommand{
		Draft: routedDraft(t),
		Mode:  rates.RankBest,
	})
	require.NoError(t, err)

	set := resp.(*apprates.FetchRatesResponse).Set
	assert.True(t, set.IsEmpty())
}

func TestFetchRatesHandler_TransportFailureIsDistinct(t *testing.T) {
	api := helpers.NewMockFreightAPI()
	api.FetchQuotesFunc = func(ctx context.Context, req *ports.RateRequest) ([]ports.QuoteData, error) {
		return nil, assert.AnError
	}
	handler := apprates.NewFetchRatesHandler(api)

	_, err := handler.Handle(context.Background(), &apprates.FetchRatesCommand{
		Draft: routedDraft(t),
		Mode:  rates.RankBest,
	})
	require.Error(t, err)

	var fetchErr *shared.FetchFailedError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestFetchRatesHandler_RejectsInvalidDraft(t *testing.T) {
	api := helpers.NewMockFreightAPI()
	handler := apprates.NewFetchRatesHandler(api)

	d := quote.NewDraft(nil)
	_, err := handler.Handle(context.Background(), &apprates.FetchRatesCommand{Draft: d, Mode: rates.RankBest})
	require.Error(t, err)
	assert.Zero(t, api.FetchCount())
}
