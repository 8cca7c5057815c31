// Package cmd implements the CLI application to value and rebalance a
// portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/vleite/wealth"
	"github.com/vleite/wealth/yahoo"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "portfolio")
	c.Register(&clearCmd{}, "portfolio")

	c.Register(&valueCmd{}, "reports")
	c.Register(&planCmd{}, "reports")
	c.Register(&gainsCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", "portfolio.jsonl", "Path to the portfolio positions file (JSONL format)")

// DecodePortfolioFile loads the positions from the app portfolio file.
// A missing file is an empty portfolio, not an error.
func DecodePortfolioFile() (*wealth.Portfolio, error) {
	f, err := os.Open(*portfolioFile)
	if errors.Is(err, fs.ErrNotExist) {
		return wealth.NewPortfolio(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return wealth.DecodePortfolio(f)
}

// AppendPosition appends a single position to the app portfolio file.
func AppendPosition(p wealth.Position) subcommands.ExitStatus {
	f, err := os.OpenFile(*portfolioFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening portfolio file %q: %v\n", *portfolioFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	single := wealth.NewPortfolio()
	single.Append(p)
	if err := wealth.EncodePortfolio(f, single); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing position: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// newEngine builds the valuation engine against the live quote provider.
// A positive rate overrides the policy's fallback exchange rate; refresh
// bypasses the local response cache.
func newEngine(fallbackRate float64, refresh bool) *wealth.Engine {
	policy := wealth.DefaultPolicy()
	if fallbackRate > 0 {
		policy.FallbackRate = decimal.NewFromFloat(fallbackRate)
	}
	provider := yahoo.NewClient()
	if refresh {
		provider = yahoo.NewDirectClient()
	}
	return wealth.NewEngine(provider, policy)
}
