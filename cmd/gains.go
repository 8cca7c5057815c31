package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/vleite/wealth"
	"github.com/vleite/wealth/renderer"
)

type gainsCmd struct {
	rate float64
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "report unrealized gains against cost basis" }
func (*gainsCmd) Usage() string {
	return `wcc gains [-r <rate>]

  Values the portfolio and reports, per holding, the unrealized gain
  against its declared cost basis. Holdings without a cost basis show
  their value with the percentage marked not available.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.rate, "r", 0, "Exchange rate to use when the currency pair quote is unavailable.")
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snapshot, status := valuate(c.rate, false)
	if snapshot == nil {
		return status
	}

	gains := make([]wealth.Gain, 0, len(snapshot.Holdings))
	for _, h := range snapshot.Holdings {
		gains = append(gains, wealth.Performance(h.ValuedPosition))
	}
	printMarkdown(renderer.GainsMarkdown(gains))
	return subcommands.ExitSuccess
}
