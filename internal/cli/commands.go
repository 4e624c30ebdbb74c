package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gokulrajanpillai/TradeDeskCLI/internal/config"
	"github.com/gokulrajanpillai/TradeDeskCLI/internal/dataflows"
	"github.com/gokulrajanpillai/TradeDeskCLI/internal/display"
	"github.com/gokulrajanpillai/TradeDeskCLI/internal/lookup"
)

// Process exit codes for the search command.
const (
	exitOK      = 0
	exitNoMatch = 1
	exitUsage   = 2
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	// Initialize configuration early
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "tradedesk",
		Short: "TradeDeskCLI - search tickers and print current prices",
		Long: `TradeDeskCLI looks up a stock or asset by ticker symbol or company name
and prints its most recent price as a table or JSON.`,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug || cfg.Debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default behavior: start interactive mode
			return runInteractiveMode(cfg)
		},
	}

	// Add subcommands
	rootCmd.AddCommand(newSearchCmd(cfg))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(cfg))

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	return rootCmd
}

// newSearchCmd creates the search command
func newSearchCmd(cfg *config.Config) *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search by ticker or company name and print the current price",
		Long: `Search by ticker OR company name and print the current price.
Example: tradedesk search --ticker AAPL
         tradedesk search --name "Apple" --json`,
		Run: func(cmd *cobra.Command, args []string) {
			svc := lookup.NewService(dataflows.NewSearchClient(cfg), dataflows.NewPriceClient())

			code := runSearch(svc, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if code != exitOK {
				os.Exit(code)
			}
		},
	}

	cmd.Flags().StringVarP(&opts.Ticker, "ticker", "t", "", "Ticker symbol, e.g. AAPL, TSLA, BTC-USD")
	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", `Company/asset name, e.g. "Apple", "Tesla"`)
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output JSON instead of a table")

	return cmd
}

// searchOptions holds the flag values for one search invocation.
type searchOptions struct {
	Ticker string
	Name   string
	JSON   bool
}

// runSearch performs one lookup and returns the process exit code: 0 on
// success (a missing price is still success), 1 when a name resolves to
// nothing, 2 when neither input was supplied.
func runSearch(svc *lookup.Service, opts searchOptions, out, errOut io.Writer) int {
	if opts.Ticker == "" && opts.Name == "" {
		fmt.Fprintln(errOut, "Provide --ticker or --name (see --help).")
		return exitUsage
	}

	res, err := svc.Lookup(lookup.Request{Ticker: opts.Ticker, Name: opts.Name})
	if err != nil {
		if errors.Is(err, lookup.ErrNoMatch) {
			fmt.Fprintf(errOut, "No results for name: %q.\n", opts.Name)
			return exitNoMatch
		}
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return exitNoMatch
	}

	if err := display.ForFormat(opts.JSON).Render(out, res); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return exitNoMatch
	}

	return exitOK
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("TradeDeskCLI v1.0.0")
			fmt.Println("Ticker search and price lookup for the command line")
		},
	}
}

// newConfigCmd creates the config command
func newConfigCmd(cfg *config.Config) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "Inspect the effective TradeDeskCLI configuration",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Run: func(cmd *cobra.Command, args []string) {
			showConfig(cfg)
		},
	})

	return configCmd
}

// showConfig displays the current configuration
func showConfig(cfg *config.Config) {
	fmt.Println("Current TradeDeskCLI Configuration:")
	fmt.Println("═══════════════════════════════════")
	fmt.Printf("Search Endpoint:   %s\n", cfg.SearchBaseURL)
	fmt.Printf("Search Timeout:    %s\n", cfg.SearchTimeout)
	fmt.Printf("User Agent:        %s\n", cfg.UserAgent)
	fmt.Printf("Debug Mode:        %t\n", cfg.Debug)
	fmt.Println()
	fmt.Println("Tips:")
	fmt.Println("  • Set TRADEDESK_SEARCH_URL to point at a different search endpoint")
	fmt.Println("  • Set TRADEDESK_SEARCH_TIMEOUT (e.g. 5s) to tune the search timeout")
	fmt.Println("  • Set TRADEDESK_DEBUG=true to log swallowed lookup failures")
}
