package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "freightflow",
		Short: "FreightFlow CLI - Search routes, compare carrier rates, and book freight",
		Long: `FreightFlow CLI drives the quote orchestration engine from the terminal.

Examples:
  freightflow ports search shangh
  freightflow quote --origin Shanghai --destination Rotterdam --container --size 40 --quantity 2
  freightflow quote --origin Ningbo --destination "Los Angeles" --loose --weight 850 --volume 3.2 --sort cheapest
  freightflow book --origin Shanghai --destination Rotterdam --container --size 40 --quantity 2 --quote-id q-123
  freightflow history --limit 20`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: config.yaml in ., ./configs, /etc/freightflow)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	rootCmd.AddCommand(NewPortsCommand())
	rootCmd.AddCommand(NewQuoteCommand())
	rootCmd.AddCommand(NewBookCommand())
	rootCmd.AddCommand(NewHistoryCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
