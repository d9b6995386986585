package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	appbooking "github.com/harborlane/freightflow-go/internal/application/booking"
	"github.com/harborlane/freightflow-go/internal/domain/booking"
	"github.com/harborlane/freightflow-go/internal/domain/quote"
)

// NewBookCommand creates the book command
func NewBookCommand() *cobra.Command {
	flags := &shipmentFlags{}
	var quoteID string

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a quoted rate",
		Long: `Book fetches fresh quotes for the route and cargo, then submits the
selected quote. The selection must belong to the fresh results; a quote ID
from an earlier fetch whose rate is gone is rejected without submitting.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, cancel := context.WithTimeout(withSessionLogger(context.Background()), 60*time.Second)
			defer cancel()

			set, err := fetchQuotes(ctx, app, flags)
			if err != nil {
				return err
			}

			mode, err := flags.cargoMode()
			if err != nil {
				return err
			}
			draft, err := buildDraft(app, flags.origin, flags.destination, mode, flags.containerSize, flags.quantity, flags.weightKg, flags.volumeCbm, flags.readyDate)
			if err != nil {
				return err
			}

			resp, err := app.Mediator.Send(ctx, &appbooking.CommitBookingCommand{
				Draft:   draft,
				Latest:  set,
				QuoteID: quoteID,
			})
			if err != nil {
				return err
			}

			attempt := resp.(*appbooking.CommitBookingResponse).Attempt
			return printAttempt(attempt, draft)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&quoteID, "quote-id", "", "Quote ID to book (required)")
	cmd.MarkFlagRequired("quote-id")
	return cmd
}

func printAttempt(attempt *booking.Attempt, draft *quote.Draft) error {
	record := attempt.Record()
	switch attempt.Status() {
	case booking.StatusConfirmed:
		fmt.Println("✓ Booking confirmed")
		fmt.Printf("  Reference: %s\n", attempt.BookingRef())
		fmt.Printf("  Route:     %s -> %s\n", draft.Origin.Value(), draft.Destination.Value())
		fmt.Printf("  Carrier:   %s\n", record.CarrierName)
		fmt.Printf("  Price:     %.2f %s\n", record.Price, record.Currency)
		return nil
	case booking.StatusFailed:
		return fmt.Errorf("booking failed: %v (run the command again to retry)", attempt.LastError())
	default:
		return fmt.Errorf("booking ended in unexpected state %s", attempt.Status())
	}
}
