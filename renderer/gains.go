package renderer

import (
	"fmt"
	"strings"

	"github.com/vleite/wealth"
)

// GainsMarkdown renders per-position gains against their cost basis.
// Positions without a declared basis show "n/a" instead of a percentage.
func GainsMarkdown(gains []wealth.Gain) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Gains\n\n")
	fmt.Fprintln(&b, "| Symbol | Cost Basis | Value | Gain | Return |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	for _, g := range gains {
		ret := "n/a"
		if g.HasReturn {
			ret = g.Return.SignedString()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			g.Symbol, g.CostBasis, g.Value, g.Absolute.SignedString(), ret)
	}
	return b.String()
}
