package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/gokulrajanpillai/TradeDeskCLI/internal/config"
	"github.com/gokulrajanpillai/TradeDeskCLI/internal/dataflows"
	"github.com/gokulrajanpillai/TradeDeskCLI/internal/lookup"
)

const (
	modeTicker = "Ticker symbol"
	modeName   = "Company name"
	modeQuit   = "Quit"
)

// runInteractiveMode loops over lookup prompts until the user quits.
func runInteractiveMode(cfg *config.Config) error {
	DisplayWelcomeBanner()

	svc := lookup.NewService(dataflows.NewSearchClient(cfg), dataflows.NewPriceClient())

	for {
		var mode string
		prompt := &survey.Select{
			Message: "Look up by:",
			Options: []string{modeTicker, modeName, modeQuit},
		}
		if err := survey.AskOne(prompt, &mode); err != nil {
			// Interrupt (Ctrl-C) ends the session
			return nil
		}
		if mode == modeQuit {
			DisplayInfo("Thanks for using TradeDeskCLI!")
			return nil
		}

		message := "Ticker symbol (e.g. AAPL, BTC-USD):"
		if mode == modeName {
			message = `Company or asset name (e.g. "Apple"):`
		}

		var value string
		if err := survey.AskOne(&survey.Input{Message: message}, &value, survey.WithValidator(survey.Required)); err != nil {
			return nil
		}

		var jsonOut bool
		if err := survey.AskOne(&survey.Confirm{Message: "Output JSON?", Default: false}, &jsonOut); err != nil {
			return nil
		}

		opts := searchOptions{JSON: jsonOut}
		if mode == modeTicker {
			opts.Ticker = strings.ToUpper(strings.TrimSpace(value))
		} else {
			opts.Name = strings.TrimSpace(value)
		}

		runSearch(svc, opts, os.Stdout, os.Stderr)
		fmt.Println()
	}
}
