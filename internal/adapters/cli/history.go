package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewHistoryCommand creates the history command
func NewHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List confirmed bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			entries, err := app.BookingLog().List(ctx, limit)
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Println("No bookings recorded yet.")
				return nil
			}

			fmt.Printf("%d booking(s):\n\n", len(entries))
			for _, e := range entries {
				fmt.Printf("%s  %-14s %-20s %s -> %s  %10.2f %s\n",
					e.CreatedAt.Format("2006-01-02 15:04"),
					e.BookingRef,
					e.CarrierName,
					e.Origin,
					e.Destination,
					e.Price,
					e.Currency,
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of bookings to show")
	return cmd
}
