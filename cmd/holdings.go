package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tracker "github.com/Harshitvit/codealpha-tasks"
	"github.com/Harshitvit/codealpha-tasks/renderer"
	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display current holdings at market value" }
func (*holdingsCmd) Usage() string {
	return `pst holdings

  Displays every position at its current market price, with cost basis and
  gain or loss per position and for the whole portfolio.
`
}

func (*holdingsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, p, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := tracker.Valuate(ctx, p, quoter())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuating portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Holdings(report))
	return subcommands.ExitSuccess
}
