// Package renderer renders the engine's reports as markdown, ready to be
// printed through a terminal markdown renderer.
package renderer

import (
	"fmt"
	"strings"

	"github.com/vleite/wealth"
)

// SnapshotMarkdown renders the allocation and drift table of a snapshot.
func SnapshotMarkdown(s *wealth.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio Valuation\n\n")
	fmt.Fprintf(&b, "- Total value: **%s**\n", s.TotalValue)
	fmt.Fprintf(&b, "- Exchange rate: %s\n", s.ExchangeRate)
	fmt.Fprintf(&b, "- Positions: %d\n\n", len(s.Holdings))

	fmt.Fprintln(&b, "| Symbol | Quantity | Unit Price | Value | Current | Target | Deviation | Verdict |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|:---|")
	for _, h := range s.Holdings {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			h.Symbol,
			h.Quantity,
			unitPrice(h),
			h.Value,
			h.Weight,
			h.Target,
			h.Deviation.SignedString(),
			verdict(h.Verdict),
		)
	}

	if len(s.Excluded) > 0 {
		fmt.Fprintf(&b, "\n> ⚠ No price could be resolved for %s: excluded from the totals.\n",
			strings.Join(s.Excluded, ", "))
	}
	switch s.Quotes {
	case wealth.StatusProviderError:
		fmt.Fprintf(&b, "\n> ⚠ The quote provider is unreachable: market data is unavailable.\n")
	case wealth.StatusNoData:
		fmt.Fprintf(&b, "\n> ⚠ The quote provider returned no data: values may be stale.\n")
	}
	return b.String()
}

func unitPrice(h wealth.Holding) string {
	if h.Class == wealth.FixedValue {
		return "-"
	}
	return h.UnitPrice.String()
}

func verdict(v wealth.Verdict) string {
	switch v {
	case wealth.VerdictAccumulate:
		return "🟢 accumulate"
	case wealth.VerdictReduce:
		return "🔴 reduce"
	default:
		return "⚖ balanced"
	}
}
