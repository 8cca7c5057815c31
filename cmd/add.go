package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/vleite/wealth"
)

type addCmd struct {
	symbol    string
	quantity  string
	target    float64
	costBasis float64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a position to the portfolio" }
func (*addCmd) Usage() string {
	return `wcc add -s <symbol> -q <quantity> -t <target> [-c <cost-basis>]

  Appends a position to the portfolio file. The symbol is normalized:
  bare B3 tickers like PETR4 get the .SA suffix, everything is
  uppercased. Symbols starting with RF- are fixed-value instruments
  and require a cost basis.

Usage Examples:
# 100 shares of Petrobras, 30% target weight.
$ wcc add -s PETR4 -q 100 -t 30

# A fraction of a bitcoin, with its purchase cost.
$ wcc add -s BTC-USD -q 0.05 -t 10 -c 12000
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Ticker symbol of the instrument.")
	f.StringVar(&c.quantity, "q", "", "Quantity held. Fractional quantities are accepted.")
	f.Float64Var(&c.target, "t", 0, "Target allocation in percent, in [0,100].")
	f.Float64Var(&c.costBasis, "c", 0, "Cost basis in the reporting currency. Required for fixed-value instruments.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := c.position()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if status := AppendPosition(p); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Successfully appended %s to %s\n", p.Symbol, *portfolioFile)
	return subcommands.ExitSuccess
}

// position validates the flags into a portfolio position.
func (c *addCmd) position() (wealth.Position, error) {
	if c.symbol == "" {
		return wealth.Position{}, fmt.Errorf("-s <symbol> is required")
	}
	if c.quantity == "" {
		return wealth.Position{}, fmt.Errorf("-q <quantity> is required")
	}
	qty, err := decimal.NewFromString(c.quantity)
	if err != nil {
		return wealth.Position{}, fmt.Errorf("invalid quantity %q: %w", c.quantity, err)
	}

	policy := wealth.DefaultPolicy()
	basis := wealth.M(0, policy.ReportingCurrency)
	if c.costBasis != 0 {
		basis = wealth.M(c.costBasis, policy.ReportingCurrency)
	}
	return wealth.NewPosition(c.symbol, wealth.Q(qty), wealth.Percent(c.target), basis)
}
