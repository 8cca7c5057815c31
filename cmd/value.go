package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vleite/wealth"
	"github.com/vleite/wealth/renderer"
)

type valueCmd struct {
	rate    float64
	refresh bool
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "value the portfolio and report allocation drift" }
func (*valueCmd) Usage() string {
	return `wcc value [-u] [-r <rate>]

  Resolves live quotes for every position, converts foreign holdings to
  the reporting currency and prints the valuation report: value, weight,
  deviation from target and a verdict per holding. Positions without a
  resolvable price are listed apart and excluded from the totals.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.rate, "r", 0, "Exchange rate to use when the currency pair quote is unavailable.")
	f.BoolVar(&c.refresh, "u", false, "Skip the local quote cache and fetch fresh data.")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snapshot, status := valuate(c.rate, c.refresh)
	if snapshot == nil {
		return status
	}
	printMarkdown(renderer.SnapshotMarkdown(snapshot))
	return subcommands.ExitSuccess
}

// valuate loads the portfolio and runs one valuation cycle. An empty
// portfolio is not a failure: it prints the "no data" state and returns a
// nil snapshot with ExitSuccess.
func valuate(rate float64, refresh bool) (*wealth.Snapshot, subcommands.ExitStatus) {
	portfolio, err := DecodePortfolioFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return nil, subcommands.ExitFailure
	}

	snapshot, err := newEngine(rate, refresh).Valuate(portfolio)
	if errors.Is(err, wealth.ErrEmptyPortfolio) {
		fmt.Println("No position could be valued. Add positions with 'wcc add', or retry when quotes are available.")
		return nil, subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuing portfolio: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return snapshot, subcommands.ExitSuccess
}
