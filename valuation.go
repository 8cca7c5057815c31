package wealth

import (
	"github.com/shopspring/decimal"
)

// Policy gathers the documented constants of the engine. The zero value is
// not usable; start from DefaultPolicy.
type Policy struct {
	// ReportingCurrency is the currency everything is normalized to.
	ReportingCurrency string
	// Pair is the provider symbol of the reference currency pair
	// (foreign reference currency to reporting currency).
	Pair string
	// FallbackRate is used when the pair cannot be resolved. A documented
	// policy constant, deliberately not a silent zero: a zero rate would
	// wipe every foreign position from the totals.
	FallbackRate decimal.Decimal
	// DriftThreshold is the deviation, in percentage points, beyond which
	// a position is classified as accumulate or reduce.
	DriftThreshold Percent
}

// DefaultPolicy reports in Brazilian real, converting foreign quotes at
// the USD/BRL rate.
func DefaultPolicy() Policy {
	return Policy{
		ReportingCurrency: "BRL",
		Pair:              "USDBRL=X",
		FallbackRate:      decimal.NewFromFloat(5.20),
		DriftThreshold:    2.0,
	}
}

// ValuedPosition is a position priced in the reporting currency.
type ValuedPosition struct {
	Position
	UnitPrice Money // resolved unit price in the reporting currency; zero for fixed-value instruments
	Value     Money // quantity × unit price, or the declared value for fixed-value instruments
}

func (v ValuedPosition) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", v.Symbol)
	w.Append("class", string(v.Class))
	w.Append("quantity", v.Quantity)
	w.Optional("unitPrice", v.UnitPrice)
	w.Append("value", v.Value)
	return w.MarshalJSON()
}

// Valuator prices positions for one valuation cycle. It captures the
// exchange rate once, falling back to the policy constant when the cycle's
// quotes did not resolve the reference pair.
type Valuator struct {
	policy Policy
	rate   decimal.Decimal
}

// NewValuator returns a valuator for the cycle described by quotes.
func NewValuator(policy Policy, quotes *QuoteSet) *Valuator {
	rate, ok := quotes.Rate()
	if !ok {
		rate = policy.FallbackRate
	}
	return &Valuator{policy: policy, rate: rate}
}

// Rate returns the exchange rate effective for this cycle.
func (v *Valuator) Rate() decimal.Decimal { return v.rate }

// ToReporting converts a raw unit price to the reporting currency.
// Domestic assets are already quoted in it; foreign ones are converted at
// the cycle's exchange rate.
func (v *Valuator) ToReporting(price decimal.Decimal, class AssetClass) Money {
	if class == Domestic {
		return M(price, v.policy.ReportingCurrency)
	}
	return M(price.Mul(v.rate), v.policy.ReportingCurrency)
}

// Value prices a single position. Fixed-value instruments take their
// declared cost basis directly, bypassing quotes and conversion. For the
// rest, the policy on an unresolved price is exclusion: ok is false and the
// position must be left out of totals, never priced at zero.
func (v *Valuator) Value(p Position, quotes *QuoteSet) (vp ValuedPosition, ok bool) {
	if p.Class == FixedValue {
		return ValuedPosition{
			Position: p,
			Value:    M(p.CostBasis.Amount(), v.policy.ReportingCurrency),
		}, true
	}
	raw, ok := quotes.Price(p.Symbol)
	if !ok {
		return ValuedPosition{Position: p}, false
	}
	price := v.ToReporting(raw, p.Class)
	return ValuedPosition{
		Position:  p,
		UnitPrice: price,
		Value:     price.Mul(p.Quantity),
	}, true
}
