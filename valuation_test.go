package wealth

import (
	"testing"

	"github.com/shopspring/decimal"
)

// quotesWith builds a QuoteSet directly, the way the resolver would.
func quotesWith(prices map[string]float64, rate float64) *QuoteSet {
	q := &QuoteSet{
		prices:     make(map[string]decimal.Decimal),
		unresolved: make(map[string]bool),
		status:     StatusOK,
	}
	for s, p := range prices {
		q.prices[s] = decimal.NewFromFloat(p)
	}
	if rate > 0 {
		q.rate, q.hasRate = decimal.NewFromFloat(rate), true
	}
	return q
}

func TestToReporting(t *testing.T) {
	v := NewValuator(DefaultPolicy(), quotesWith(nil, 5.0))

	// A domestic price is invariant under the exchange rate.
	if got := v.ToReporting(decimal.NewFromInt(10), Domestic); !got.Equal(BRL(10)) {
		t.Errorf("domestic ToReporting(10) = %v, want %v", got, BRL(10))
	}
	// A foreign price scales linearly with the rate.
	if got := v.ToReporting(decimal.NewFromInt(10), Foreign); !got.Equal(BRL(50)) {
		t.Errorf("foreign ToReporting(10) = %v, want %v", got, BRL(50))
	}
	double := NewValuator(DefaultPolicy(), quotesWith(nil, 10.0))
	if got := double.ToReporting(decimal.NewFromInt(10), Foreign); !got.Equal(BRL(100)) {
		t.Errorf("foreign ToReporting(10) at doubled rate = %v, want %v", got, BRL(100))
	}
	if got := double.ToReporting(decimal.NewFromInt(10), Domestic); !got.Equal(BRL(10)) {
		t.Errorf("domestic ToReporting(10) at doubled rate = %v, want %v", got, BRL(10))
	}
}

func TestValuatorFallbackRate(t *testing.T) {
	// No rate in the quote set: the documented policy constant applies,
	// never a silent zero.
	v := NewValuator(DefaultPolicy(), quotesWith(nil, 0))
	if !v.Rate().Equal(DefaultPolicy().FallbackRate) {
		t.Errorf("Rate() = %v, want the fallback %v", v.Rate(), DefaultPolicy().FallbackRate)
	}
}

func TestValuePosition(t *testing.T) {
	quotes := quotesWith(map[string]float64{"AAA.SA": 10, "BBB": 5}, 5.0)
	v := NewValuator(DefaultPolicy(), quotes)

	testCases := []struct {
		name     string
		position Position
		want     Money
		included bool
	}{
		{"domestic", mustPosition(t, "AAA.SA", 100, 50, Money{}), BRL(1000), true},
		{"foreign converted", mustPosition(t, "BBB", 10, 50, Money{}), BRL(250), true},
		{"fixed value from cost basis", mustPosition(t, "RF-CDB", 1, 10, BRL(5000)), BRL(5000), true},
		{"unresolved excluded", mustPosition(t, "ZZZ", 10, 10, Money{}), Money{}, false},
		{"unresolved with basis still excluded", mustPosition(t, "ZZZ", 10, 10, BRL(123)), Money{}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			vp, ok := v.Value(tc.position, quotes)
			if ok != tc.included {
				t.Fatalf("Value() included = %v, want %v", ok, tc.included)
			}
			if ok && !vp.Value.Equal(tc.want) {
				t.Errorf("Value() = %v, want %v", vp.Value, tc.want)
			}
		})
	}
}

func TestValueKeepsCryptoPrecision(t *testing.T) {
	quotes := quotesWith(map[string]float64{"BTC-USD": 100000}, 5.0)
	v := NewValuator(DefaultPolicy(), quotes)

	p, err := NewPosition("BTC-USD", Q(0.00000001), 5, Money{})
	if err != nil {
		t.Fatal(err)
	}
	vp, ok := v.Value(p, quotes)
	if !ok {
		t.Fatal("BTC-USD should be valued")
	}
	// 1e-8 BTC × 100000 USD × 5 = 0.005 BRL, exactly.
	if got := vp.Value.Amount().String(); got != "0.005" {
		t.Errorf("Value amount = %s, want 0.005 (exact decimal math)", got)
	}
}
