package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	applocation "github.com/harborlane/freightflow-go/internal/application/location"
)

// NewPortsCommand creates the ports command group
func NewPortsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ports",
		Short: "Look up ports and cities",
	}
	cmd.AddCommand(newPortsSearchCommand())
	return cmd
}

func newPortsSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <text>",
		Short: "Search the place reference by free text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, cancel := context.WithTimeout(withSessionLogger(context.Background()), 10*time.Second)
			defer cancel()

			query := strings.Join(args, " ")
			app.Resolver.Resolve(applocation.FieldOrigin, query)
			app.Resolver.Flush(ctx)

			candidates := app.Resolver.Candidates(applocation.FieldOrigin)
			if len(candidates) == 0 {
				fmt.Printf("No places found for %q\n", query)
				return nil
			}

			fmt.Printf("Found %d place(s):\n", len(candidates))
			for _, c := range candidates {
				fmt.Printf("  %-30s %s  %s\n", c.DisplayName, c.CountryCode, c.PlaceType)
			}
			return nil
		},
	}
}
