package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/harborlane/freightflow-go/internal/application/common"
	"github.com/harborlane/freightflow-go/internal/domain/booking"
	"github.com/harborlane/freightflow-go/internal/domain/quote"
	"github.com/harborlane/freightflow-go/internal/domain/rates"
	"github.com/harborlane/freightflow-go/internal/domain/shared"
	"github.com/harborlane/freightflow-go/internal/infrastructure/ports"
)

// CommitBookingCommand submits the selected quote for booking. Latest must
// be the quote set currently on screen; the selection is validated against
// it before anything reaches the network.
type CommitBookingCommand struct {
	Draft   *quote.Draft
	Latest  *rates.QuoteSet
	QuoteID string
}

// CommitBookingResponse carries the finished attempt. Status CONFIRMED
// means the backend issued a reference; FAILED means the request errored or
// was declined, and the caller may offer a manual retry.
type CommitBookingResponse struct {
	Attempt *booking.Attempt
}

// CommitBookingHandler performs exactly one booking submission per command.
// There is no automatic retry at any level: a duplicate submission risks a
// duplicate booking, so only an explicit user action resubmits.
type CommitBookingHandler struct {
	api   ports.FreightAPI
	log   common.BookingLog
	clock shared.Clock
}

// NewCommitBookingHandler creates a new commit booking handler
func NewCommitBookingHandler(api ports.FreightAPI, log common.BookingLog, clock shared.Clock) *CommitBookingHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &CommitBookingHandler{api: api, log: log, clock: clock}
}

// Handle validates the selection, then submits it. Precondition violations
// (stale selection, missing route) return an error without any network
// traffic. Once the request is sent, transport failures and backend declines
// are reported through the attempt's FAILED state, not as a handler error.
func (h *CommitBookingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*CommitBookingCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	logger := common.LoggerFromContext(ctx)

	if cmd.Latest == nil || !cmd.Latest.Contains(cmd.QuoteID) {
		return nil, shared.NewStaleSelectionError(cmd.QuoteID)
	}
	if err := cmd.Draft.ValidateRoute(); err != nil {
		return nil, err
	}

	selected, _ := cmd.Latest.Find(cmd.QuoteID)

	// The record echoes the selected quote verbatim. Price and currency are
	// never recomputed between display and submission.
	record := booking.Record{
		QuoteID:     selected.ID,
		Origin:      cmd.Draft.Origin.Value(),
		Destination: cmd.Draft.Destination.Value(),
		CarrierName: selected.CarrierName,
		Price:       selected.Price,
		Currency:    selected.Currency,
	}

	attempt := booking.NewAttempt(record, h.clock)
	if err := attempt.Submit(); err != nil {
		return nil, err
	}

	result, err := h.api.CreateBooking(ctx, &ports.BookingRequest{
		QuoteID:     record.QuoteID,
		Origin:      record.Origin,
		Destination: record.Destination,
		Carrier:     record.CarrierName,
		Price:       record.Price,
		Currency:    record.Currency,
	})

	switch {
	case err != nil:
		logger.Log("error", "booking request failed", map[string]interface{}{
			"quoteId": record.QuoteID,
			"error":   err.Error(),
		})
		if ferr := attempt.Fail(err); ferr != nil {
			return nil, ferr
		}
	case !result.Success || result.BookingRef == "":
		logger.Log("warn", "booking declined by backend", map[string]interface{}{
			"quoteId": record.QuoteID,
		})
		if ferr := attempt.Fail(shared.NewCommitDeclinedError(record.QuoteID)); ferr != nil {
			return nil, ferr
		}
	default:
		if cerr := attempt.Confirm(result.BookingRef); cerr != nil {
			return nil, cerr
		}
		h.appendLog(ctx, attempt)
	}

	return &CommitBookingResponse{Attempt: attempt}, nil
}

// appendLog records a confirmed booking in the local history. Logging is
// best effort; a persistence hiccup never un-confirms a booking the backend
// already accepted.
func (h *CommitBookingHandler) appendLog(ctx context.Context, attempt *booking.Attempt) {
	if h.log == nil {
		return
	}
	record := attempt.Record()
	entry := &common.BookingLogEntry{
		ID:          uuid.New().String(),
		QuoteID:     record.QuoteID,
		Origin:      record.Origin,
		Destination: record.Destination,
		CarrierName: record.CarrierName,
		Price:       record.Price,
		Currency:    record.Currency,
		BookingRef:  attempt.BookingRef(),
		CreatedAt:   h.clock.Now(),
	}
	if err := h.log.Append(ctx, entry); err != nil {
		common.LoggerFromContext(ctx).Log("warn", "failed to record booking in history", map[string]interface{}{
			"bookingRef": attempt.BookingRef(),
			"error":      err.Error(),
		})
	}
}
