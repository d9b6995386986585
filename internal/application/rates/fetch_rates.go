package rates

import (
	"context"
	"fmt"
	"time"

	"github.com/harborlane/freightflow-go/internal/application/common"
	"github.com/harborlane/freightflow-go/internal/domain/quote"
	"github.com/harborlane/freightflow-go/internal/domain/rates"
	"github.com/harborlane/freightflow-go/internal/domain/shared"
	"github.com/harborlane/freightflow-go/internal/infrastructure/ports"
)

// FetchRatesCommand requests carrier offers for the draft's current route
// and cargo. Sequence is the wizard fetch sequence this request belongs to;
// the caller uses it to drop results that resolve after being superseded.
type FetchRatesCommand struct {
	Draft    *quote.Draft
	Filter   rates.Filter
	Mode     rates.RankMode
	Sequence uint64
}

// FetchRatesResponse carries the filtered, ranked quote set
type FetchRatesResponse struct {
	Set *rates.QuoteSet
}

// FetchRatesHandler fetches offers from the backend and applies the
// client-side filter and ranking pipeline
type FetchRatesHandler struct {
	api    ports.FreightAPI
	ranker *rates.Ranker
}

// NewFetchRatesHandler creates a new fetch rates handler
func NewFetchRatesHandler(api ports.FreightAPI) *FetchRatesHandler {
	return &FetchRatesHandler{
		api:    api,
		ranker: rates.NewRanker(),
	}
}

// Handle executes the fetch. A transport or protocol failure returns a
// FetchFailedError; a successful fetch with zero matches (before or after
// filtering) returns an empty set, which is a normal state.
func (h *FetchRatesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*FetchRatesCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if err := cmd.Draft.ValidateRoute(); err != nil {
		return nil, err
	}
	if err := cmd.Draft.Cargo.Validate(); err != nil {
		return nil, err
	}

	// The snapshot is taken at fetch time; results belong to this exact
	// route+cargo combination and to nothing newer
	snapshot := cmd.Draft.SnapshotKey()

	data, err := h.api.FetchQuotes(ctx, buildRateRequest(cmd.Draft))
	if err != nil {
		return nil, shared.NewFetchFailedError(err)
	}

	quotes := make([]rates.CarrierQuote, len(data))
	for i, q := range data {
		quotes[i] = convertQuote(q)
	}

	ranked := h.ranker.Rank(cmd.Filter.Apply(quotes), cmd.Mode)

	return &FetchRatesResponse{
		Set: &rates.QuoteSet{
			Sequence:    cmd.Sequence,
			SnapshotKey: snapshot,
			Quotes:      ranked,
		},
	}, nil
}

// buildRateRequest serializes only the active cargo variant alongside the
// route; service toggles and incoterm never reach the quotes endpoint
func buildRateRequest(d *quote.Draft) *ports.RateRequest {
	req := &ports.RateRequest{
		Origin:      d.Origin.Value(),
		Destination: d.Destination.Value(),
		CargoType:   string(d.Cargo.Mode),
		Commodity:   d.Commodity,
	}
	if !d.ReadyDate.IsZero() {
		req.ReadyDate = d.ReadyDate.Format(time.DateOnly)
	}

	switch d.Cargo.Mode {
	case quote.CargoModeContainer:
		req.ContainerSize = string(d.Cargo.Container.Size)
		req.Quantity = d.Cargo.Container.Quantity
	case quote.CargoModeLoose:
		req.WeightKg = d.Cargo.Loose.WeightKg
		req.VolumeCbm = d.Cargo.Loose.VolumeCbm
	}
	return req
}

func convertQuote(q ports.QuoteData) rates.CarrierQuote {
	fees := make([]rates.FeeLine, len(q.FeeBreakdown))
	for i, f := range q.FeeBreakdown {
		fees[i] = rates.FeeLine{Label: f.Label, Amount: f.Amount}
	}
	return rates.CarrierQuote{
		ID:            q.ID,
		CarrierName:   q.CarrierName,
		Price:         q.Price,
		Currency:      q.Currency,
		TransitDays:   q.TransitDays,
		VesselName:    q.VesselName,
		DepartureDate: q.DepartureDate,
		FeeBreakdown:  fees,
		RiskScore:     q.RiskScore,
	}
}
