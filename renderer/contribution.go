package renderer

import (
	"fmt"
	"strings"

	"github.com/vleite/wealth"
)

// ContributionMarkdown renders a contribution plan.
func ContributionMarkdown(p wealth.ContributionPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Contribution Plan\n\n")
	fmt.Fprintf(&b, "- New cash: **%s**\n\n", p.Amount)

	if len(p.Allocations) == 0 {
		fmt.Fprintln(&b, "Every position is at or above its target: nothing to allocate.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Symbol | Contribution |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, a := range p.Allocations {
		fmt.Fprintf(&b, "| %s | %s |\n", a.Symbol, a.Amount)
	}
	fmt.Fprintf(&b, "| **Total** | **%s** |\n", p.Total())
	return b.String()
}
