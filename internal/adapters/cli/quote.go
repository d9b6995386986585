package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	apprates "github.com/harborlane/freightflow-go/internal/application/rates"
	"github.com/harborlane/freightflow-go/internal/domain/rates"
)

// shipmentFlags holds the route and cargo flags shared by quote and book
type shipmentFlags struct {
	origin        string
	destination   string
	container     bool
	loose         bool
	containerSize string
	quantity      int
	weightKg      float64
	volumeCbm     float64
	readyDate     string
	sortMode      string
	carriers      string
	maxTransit    int
}

func (f *shipmentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.origin, "origin", "", "Origin port or city (required)")
	cmd.Flags().StringVar(&f.destination, "destination", "", "Destination port or city (required)")
	cmd.Flags().BoolVar(&f.container, "container", false, "Quote full container cargo")
	cmd.Flags().BoolVar(&f.loose, "loose", false, "Quote loose cargo")
	cmd.Flags().StringVar(&f.containerSize, "size", "40", "Container size: 20, 40, 40HC, 45HC")
	cmd.Flags().IntVar(&f.quantity, "quantity", 1, "Container quantity")
	cmd.Flags().Float64Var(&f.weightKg, "weight", 0, "Loose cargo weight in kg")
	cmd.Flags().Float64Var(&f.volumeCbm, "volume", 0, "Loose cargo volume in cbm")
	cmd.Flags().StringVar(&f.readyDate, "ready-date", "", "Cargo ready date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.sortMode, "sort", "", "Ranking mode: cheapest, fastest, best")
	cmd.Flags().StringVar(&f.carriers, "carriers", "", "Comma-separated carrier allowlist")
	cmd.Flags().IntVar(&f.maxTransit, "max-transit-days", 0, "Exclude quotes above this transit time")
	cmd.MarkFlagRequired("origin")
	cmd.MarkFlagRequired("destination")
}

func (f *shipmentFlags) cargoMode() (string, error) {
	switch {
	case f.container && f.loose:
		return "", fmt.Errorf("choose one of --container or --loose")
	case f.loose:
		return "loose", nil
	default:
		// Container is the default shipment type
		return "container", nil
	}
}

// fetchQuotes runs the shared draft → fetch pipeline for quote and book
func fetchQuotes(ctx context.Context, app *App, f *shipmentFlags) (*rates.QuoteSet, error) {
	mode, err := f.cargoMode()
	if err != nil {
		return nil, err
	}

	draft, err := buildDraft(app, f.origin, f.destination, mode, f.containerSize, f.quantity, f.weightKg, f.volumeCbm, f.readyDate)
	if err != nil {
		return nil, err
	}

	sortMode := f.sortMode
	if sortMode == "" {
		sortMode = app.Config.Quoting.DefaultRankMode
	}

	resp, err := app.Mediator.Send(ctx, &apprates.FetchRatesCommand{
		Draft:    draft,
		Filter:   buildFilter(app, f.carriers, f.maxTransit),
		Mode:     rates.ParseRankMode(sortMode),
		Sequence: 1,
	})
	if err != nil {
		return nil, err
	}
	return resp.(*apprates.FetchRatesResponse).Set, nil
}

// NewQuoteCommand creates the quote command
func NewQuoteCommand() *cobra.Command {
	flags := &shipmentFlags{}
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Fetch and rank carrier quotes for a route",
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

			if set.IsEmpty() {
				fmt.Println("No quotes available for this route and cargo. Adjust the filters or try another ready date.")
				return nil
			}

			fmt.Printf("%d quote(s) for %s -> %s:\n\n", len(set.Quotes), flags.origin, flags.destination)
			for i, q := range set.Quotes {
				fmt.Printf("%2d. [%s] %-20s %10.2f %s  %3d days", i+1, q.ID, q.CarrierName, q.Price, q.Currency, q.TransitDays)
				if q.VesselName != "" {
					fmt.Printf("  %s", q.VesselName)
				}
				if q.DepartureDate != "" {
					fmt.Printf("  dep %s", q.DepartureDate)
				}
				fmt.Println()
				if verbose {
					for _, fee := range q.FeeBreakdown {
						fmt.Printf("      %-28s %10.2f\n", fee.Label, fee.Amount)
					}
				}
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
