package wealth

import (
	"errors"
	"time"
)

// ErrEmptyPortfolio is reported when a cycle has nothing to aggregate:
// either the portfolio holds no positions, or none of them has a resolved
// value. Callers render it as a "no data" state.
var ErrEmptyPortfolio = errors.New("empty portfolio: no position with a resolved value")

// Verdict is the presentation-oriented classification of a holding's drift.
type Verdict string

const (
	VerdictAccumulate Verdict = "accumulate" // under target beyond the threshold: buy
	VerdictBalanced   Verdict = "balanced"
	VerdictReduce     Verdict = "reduce" // over target beyond the threshold: hold or trim
)

// Holding is one line of a snapshot: a valued position with its share of
// the portfolio and its drift from target.
type Holding struct {
	ValuedPosition
	Weight    Percent // share of the total value, in percentage points
	Deviation Percent // Weight − Target; negative means under target
	Verdict   Verdict
}

func (h Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(h.ValuedPosition)
	w.Append("target", float64(h.Target))
	w.Append("weight", float64(h.Weight))
	w.Append("deviation", float64(h.Deviation))
	w.Append("verdict", string(h.Verdict))
	return w.MarshalJSON()
}

// Snapshot is the currency-normalized view of the portfolio for one cycle.
// Weights are computed over the included holdings only, so they always sum
// to 100% of the reported total; positions excluded for lack of a price are
// listed apart, they are never silently zeroed.
type Snapshot struct {
	Time              time.Time
	ReportingCurrency string
	TotalValue        Money
	ExchangeRate      Money // reporting-currency price of one unit of the foreign reference currency
	Holdings          []Holding
	Excluded          []string    // symbols left out: no resolved price and no fixed value
	Quotes            QuoteStatus // how quote resolution went this cycle
}

func (s *Snapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("time", s.Time)
	w.Append("currency", s.ReportingCurrency)
	w.Append("totalValue", s.TotalValue)
	w.Optional("exchangeRate", s.ExchangeRate)
	w.Append("holdings", s.Holdings)
	w.Optional("excluded", s.Excluded)
	w.Append("quotes", s.Quotes.String())
	return w.MarshalJSON()
}

// Analyze aggregates valued positions into a snapshot: total value,
// per-holding weight, deviation from target and drift verdict. It reports
// ErrEmptyPortfolio when the total is zero, so that a division by zero can
// never happen downstream.
func Analyze(policy Policy, valued []ValuedPosition, excluded []string, quotes QuoteStatus) (*Snapshot, error) {
	total := M(0, policy.ReportingCurrency)
	for _, v := range valued {
		total = total.Add(v.Value)
	}
	if len(valued) == 0 || total.IsZero() {
		return nil, ErrEmptyPortfolio
	}

	holdings := make([]Holding, 0, len(valued))
	for _, v := range valued {
		weight := Percent(v.Value.Amount().Div(total.Amount()).InexactFloat64() * 100)
		deviation := weight - v.Target
		holdings = append(holdings, Holding{
			ValuedPosition: v,
			Weight:         weight,
			Deviation:      deviation,
			Verdict:        classify(deviation, policy.DriftThreshold),
		})
	}

	return &Snapshot{
		Time:              time.Now(),
		ReportingCurrency: policy.ReportingCurrency,
		TotalValue:        total,
		Holdings:          holdings,
		Excluded:          excluded,
		Quotes:            quotes,
	}, nil
}

// classify maps a deviation to its drift verdict at the given threshold.
func classify(deviation, threshold Percent) Verdict {
	switch {
	case deviation < -threshold:
		return VerdictAccumulate
	case deviation > threshold:
		return VerdictReduce
	default:
		return VerdictBalanced
	}
}
