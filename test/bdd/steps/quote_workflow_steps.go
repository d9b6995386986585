package steps

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cucumber/godog"

	appbooking "github.com/harborlane/freightflow-go/internal/application/booking"
	apprates "github.com/harborlane/freightflow-go/internal/application/rates"
	"github.com/harborlane/freightflow-go/internal/domain/booking"
	"github.com/harborlane/freightflow-go/internal/domain/quote"
	"github.com/harborlane/freightflow-go/internal/domain/rates"
	"github.com/harborlane/freightflow-go/internal/domain/shared"
	"github.com/harborlane/freightflow-go/internal/infrastructure/ports"
	"github.com/harborlane/freightflow-go/test/helpers"
)

type quoteWorkflowContext struct {
	clock      *shared.MockClock
	api        *helpers.MockFreightAPI
	bookingLog *helpers.MemoryBookingLog

	fetchHandler  *apprates.FetchRatesHandler
	commitHandler *appbooking.CommitBookingHandler

	draft    *quote.Draft
	latest   *rates.QuoteSet
	attempt  *booking.Attempt
	lastErr  error
	sequence uint64
}

func (ctx *quoteWorkflowContext) reset() {
	ctx.clock = shared.NewMockClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	ctx.api = helpers.NewMockFreightAPI()
	ctx.bookingLog = helpers.NewMemoryBookingLog()
	ctx.fetchHandler = apprates.NewFetchRatesHandler(ctx.api)
	ctx.commitHandler = appbooking.NewCommitBookingHandler(ctx.api, ctx.bookingLog, ctx.clock)
	ctx.draft = nil
	ctx.latest = nil
	ctx.attempt = nil
	ctx.lastErr = nil
	ctx.sequence = 0
}

// Given steps

func (ctx *quoteWorkflowContext) aShipmentWithContainers(origin, destination string, quantity int, size string) error {
	ctx.draft = quote.NewDraft(ctx.clock)
	ctx.draft.SetOrigin(origin)
	ctx.draft.SetDestination(destination)

	parsed, err := quote.ParseContainerSize(size)
	if err != nil {
		return err
	}
	return ctx.draft.Cargo.UseContainer(parsed, quantity)
}

func (ctx *quoteWorkflowContext) theBackendOffersTheFollowingQuotes(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("quote table needs a header and at least one row")
	}

	var quotes []ports.QuoteData
	for _, row := range table.Rows[1:] {
		price, err := strconv.ParseFloat(row.Cells[2].Value, 64)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", row.Cells[2].Value, err)
		}
		transitDays, err := strconv.Atoi(row.Cells[4].Value)
		if err != nil {
			return fmt.Errorf("invalid transit days %q: %w", row.Cells[4].Value, err)
		}
		quotes = append(quotes, ports.QuoteData{
			ID:          row.Cells[0].Value,
			CarrierName: row.Cells[1].Value,
			Price:       price,
			Currency:    row.Cells[3].Value,
			TransitDays: transitDays,
		})
	}

	ctx.api.FetchQuotesFunc = func(c context.Context, req *ports.RateRequest) ([]ports.QuoteData, error) {
		return quotes, nil
	}
	return nil
}

func (ctx *quoteWorkflowContext) theBackendOffersNoQuotes() error {
	ctx.api.FetchQuotesFunc = func(c context.Context, req *ports.RateRequest) ([]ports.QuoteData, error) {
		return []ports.QuoteData{}, nil
	}
	return nil
}

func (ctx *quoteWorkflowContext) theBackendWillDeclineTheFirstBookingRequest() error {
	declined := false
	ctx.api.CreateBookingFunc = func(c context.Context, req *ports.BookingRequest) (*ports.BookingResult, error) {
		if !declined {
			declined = true
			return &ports.BookingResult{Success: false}, nil
		}
		return &ports.BookingResult{Success: true, BookingRef: "BKG-RETRY-1"}, nil
	}
	return nil
}

// When steps

func (ctx *quoteWorkflowContext) iFetchQuotesSortedBy(mode string) error {
	ctx.sequence++
	resp, err := ctx.fetchHandler.Handle(context.Background(), &apprates.FetchRatesCommand{
		Draft:    ctx.draft,
		Mode:     rates.ParseRankMode(mode),
		Sequence: ctx.sequence,
	})
	if err != nil {
		return err
	}
	ctx.latest = resp.(*apprates.FetchRatesResponse).Set
	return nil
}

func (ctx *quoteWorkflowContext) iBookQuote(quoteID string) error {
	ctx.attempt = nil
	resp, err := ctx.commitHandler.Handle(context.Background(), &appbooking.CommitBookingCommand{
		Draft:   ctx.draft,
		Latest:  ctx.latest,
		QuoteID: quoteID,
	})
	ctx.lastErr = err
	if err != nil {
		return nil
	}
	ctx.attempt = resp.(*appbooking.CommitBookingResponse).Attempt
	return nil
}

// Then steps

func (ctx *quoteWorkflowContext) theFirstQuoteShouldBe(quoteID string) error {
	if ctx.latest == nil || len(ctx.latest.Quotes) == 0 {
		return fmt.Errorf("no quotes were fetched")
	}
	if got := ctx.latest.Quotes[0].ID; got != quoteID {
		return fmt.Errorf("expected first quote %s, got %s", quoteID, got)
	}
	return nil
}

func (ctx *quoteWorkflowContext) theBookingShouldBeConfirmedWithAReference() error {
	if ctx.lastErr != nil {
		return fmt.Errorf("commit returned an error: %v", ctx.lastErr)
	}
	if ctx.attempt == nil {
		return fmt.Errorf("no booking attempt was made")
	}
	if ctx.attempt.Status() != booking.StatusConfirmed {
		return fmt.Errorf("expected CONFIRMED, got %s", ctx.attempt.Status())
	}
	if ctx.attempt.BookingRef() == "" {
		return fmt.Errorf("confirmed booking has no reference")
	}
	return nil
}

func (ctx *quoteWorkflowContext) theBookedPriceShouldBe(price float64, currency string) error {
	record := ctx.attempt.Record()
	if record.Price != price {
		return fmt.Errorf("expected price %.2f, got %.2f", price, record.Price)
	}
	if record.Currency != currency {
		return fmt.Errorf("expected currency %s, got %s", currency, record.Currency)
	}
	return nil
}

func (ctx *quoteWorkflowContext) theBookingShouldHaveFailed() error {
	if ctx.lastErr != nil {
		return fmt.Errorf("commit returned an error instead of a failed attempt: %v", ctx.lastErr)
	}
	if ctx.attempt == nil {
		return fmt.Errorf("no booking attempt was made")
	}
	if ctx.attempt.Status() != booking.StatusFailed {
		return fmt.Errorf("expected FAILED, got %s", ctx.attempt.Status())
	}
	return nil
}

func (ctx *quoteWorkflowContext) theCommitShouldBeRejectedAsStale() error {
	var staleErr *shared.StaleSelectionError
	if !errors.As(ctx.lastErr, &staleErr) {
		return fmt.Errorf("expected a stale selection rejection, got %v", ctx.lastErr)
	}
	return nil
}

func (ctx *quoteWorkflowContext) noBookingRequestShouldHaveReachedTheBackend() error {
	if count := ctx.api.BookingCount(); count != 0 {
		return fmt.Errorf("expected 0 booking requests, got %d", count)
	}
	return nil
}

func (ctx *quoteWorkflowContext) theQuoteResultsShouldBeEmpty() error {
	if ctx.latest == nil {
		return fmt.Errorf("no fetch was performed")
	}
	if !ctx.latest.IsEmpty() {
		return fmt.Errorf("expected empty results, got %d quotes", len(ctx.latest.Quotes))
	}
	return nil
}

func (ctx *quoteWorkflowContext) theBookingHistoryShouldContainEntries(count int) error {
	if got := len(ctx.bookingLog.Entries()); got != count {
		return fmt.Errorf("expected %d history entries, got %d", count, got)
	}
	return nil
}

// InitializeQuoteWorkflowScenario registers quote workflow steps
func InitializeQuoteWorkflowScenario(sc *godog.ScenarioContext) {
	ctx := &quoteWorkflowContext{}

	sc.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		ctx.reset()
		return c, nil
	})

	sc.Step(`^a shipment from "([^"]*)" to "([^"]*)" with (\d+) "([^"]*)" containers$`, ctx.aShipmentWithContainers)
	sc.Step(`^the backend offers the following quotes:$`, ctx.theBackendOffersTheFollowingQuotes)
	sc.Step(`^the backend offers no quotes$`, ctx.theBackendOffersNoQuotes)
	sc.Step(`^the backend will decline the first booking request$`, ctx.theBackendWillDeclineTheFirstBookingRequest)
	sc.Step(`^I fetch quotes sorted by "([^"]*)"$`, ctx.iFetchQuotesSortedBy)
	sc.Step(`^I book quote "([^"]*)"$`, ctx.iBookQuote)
	sc.Step(`^the first quote should be "([^"]*)"$`, ctx.theFirstQuoteShouldBe)
	sc.Step(`^the booking should be confirmed with a reference$`, ctx.theBookingShouldBeConfirmedWithAReference)
	sc.Step(`^the booked price should be ([\d.]+) "([^"]*)"$`, ctx.theBookedPriceShouldBe)
	sc.Step(`^the booking should have failed$`, ctx.theBookingShouldHaveFailed)
	sc.Step(`^the commit should be rejected as stale$`, ctx.theCommitShouldBeRejectedAsStale)
	sc.Step(`^no booking request should have reached the backend$`, ctx.noBookingRequestShouldHaveReachedTheBackend)
	sc.Step(`^the quote results should be empty$`, ctx.theQuoteResultsShouldBeEmpty)
	sc.Step(`^the booking history should contain (\d+) entr(?:y|ies)$`, ctx.theBookingHistoryShouldContainEntries)
}
