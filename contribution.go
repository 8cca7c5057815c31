package wealth

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Allocation is the suggested contribution for a single holding.
type Allocation struct {
	Symbol string
	Amount Money
}

func (a Allocation) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", a.Symbol)
	w.Append("amount", a.Amount)
	return w.MarshalJSON()
}

// ContributionPlan distributes a new cash amount across the under-target
// holdings, in snapshot order. An empty Allocations list means the
// portfolio is already at or above target everywhere.
type ContributionPlan struct {
	Amount      Money
	Allocations []Allocation
}

// Total returns the sum of the suggested allocations.
func (p ContributionPlan) Total() Money {
	total := M(0, p.Amount.Currency())
	for _, a := range p.Allocations {
		total = total.Add(a.Amount)
	}
	return total
}

func (p ContributionPlan) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("amount", p.Amount)
	w.Append("allocations", p.Allocations)
	return w.MarshalJSON()
}

// AllocateContribution splits amount across the holdings that sit under
// their target weight, proportionally to the size of their deficit, so the
// most under-weighted positions are favored. Holdings at or over target get
// nothing; when none is under target the plan is empty. A non-positive
// amount is a caller bug and is rejected.
func AllocateContribution(s *Snapshot, amount Money) (ContributionPlan, error) {
	if !amount.IsPositive() {
		return ContributionPlan{}, fmt.Errorf("contribution amount %s must be positive", amount)
	}

	plan := ContributionPlan{Amount: amount}

	totalDeficit := decimal.Decimal{}
	for _, h := range s.Holdings {
		if h.Deviation < 0 {
			totalDeficit = totalDeficit.Add(decimal.NewFromFloat(float64(h.Deviation.Abs())))
		}
	}
	if totalDeficit.IsZero() {
		return plan, nil // nothing under target, nothing to allocate
	}

	for _, h := range s.Holdings {
		if h.Deviation >= 0 {
			continue
		}
		deficit := decimal.NewFromFloat(float64(h.Deviation.Abs()))
		plan.Allocations = append(plan.Allocations, Allocation{
			Symbol: h.Symbol,
			Amount: amount.Scale(deficit.Div(totalDeficit)),
		})
	}
	return plan, nil
}
