package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vleite/wealth"
	"github.com/vleite/wealth/renderer"
)

type planCmd struct {
	amount float64
	rate   float64
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "split a contribution across under-target holdings" }
func (*planCmd) Usage() string {
	return `wcc plan -amount <amount> [-r <rate>]

  Values the portfolio, then splits a cash contribution across the
  holdings below their target weight, proportionally to how far below
  they are. Holdings at or above target get nothing. A balanced
  portfolio yields an empty plan.
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Contribution amount in the reporting currency.")
	f.Float64Var(&c.rate, "r", 0, "Exchange rate to use when the currency pair quote is unavailable.")
}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snapshot, status := valuate(c.rate, false)
	if snapshot == nil {
		return status
	}

	amount := wealth.M(c.amount, snapshot.ReportingCurrency)
	plan, err := wealth.AllocateContribution(snapshot, amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.ContributionMarkdown(plan))
	return subcommands.ExitSuccess
}
