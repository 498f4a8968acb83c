// Package cmd implements the CLI application to manage a stock portfolio.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tracker "github.com/Harshitvit/codealpha-tasks"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&depositCmd{}, "transactions")
	c.Register(&withdrawCmd{}, "transactions")
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")

	c.Register(&holdingsCmd{}, "reports")
	c.Register(&txCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")

	c.Register(&assistCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var portfolioFile = flag.String("portfolio-file", "", "Path to the portfolio snapshot file. Overrides PORTFOLIO_FILE")

// appConfig loads the environment configuration and applies the command line
// override on top.
func appConfig() (tracker.Config, error) {
	cfg, err := tracker.LoadConfig()
	if err != nil {
		return tracker.Config{}, err
	}
	if *portfolioFile != "" {
		cfg.PortfolioFile = *portfolioFile
	}
	return cfg, nil
}

// openStore is the central function to open the portfolio snapshot.
func openStore() (*tracker.Store, *tracker.Portfolio, error) {
	cfg, err := appConfig()
	if err != nil {
		return nil, nil, err
	}
	store := tracker.NewStore(cfg.PortfolioFile)
	p, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	return store, p, nil
}

// quoter returns the configured price source. Without an API key, quotes come
// from a random demo source, and the fallback is announced on stderr.
func quoter() tracker.PriceSource {
	cfg, err := appConfig()
	if err == nil && cfg.APIKey != "" {
		return tracker.NewAlphaVantage(cfg.APIKey, cfg.QuoteTimeout)
	}
	log.Println("warning, ALPHA_VANTAGE_API_KEY is not set, quotes are random demo prices")
	return tracker.NewDemoSource(time.Now().UnixNano())
}

// saveTransaction persists the portfolio after a successful ledger mutation.
func saveTransaction(store *tracker.Store, p *tracker.Portfolio, tx tracker.Transaction) subcommands.ExitStatus {
	if err := store.Save(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio file %q: %v\n", store.Path(), err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully recorded transaction in %s\n", store.Path())
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer is not usable.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
