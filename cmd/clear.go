package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearCmd struct{}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "remove every position from the portfolio" }
func (*clearCmd) Usage() string {
	return `wcc clear

  Truncates the portfolio file. Positions cannot be removed one by one,
  the portfolio is append-only; clear and re-add to start over.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := os.Truncate(*portfolioFile, 0); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error clearing portfolio file %q: %v\n", *portfolioFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Cleared %s\n", *portfolioFile)
	return subcommands.ExitSuccess
}
