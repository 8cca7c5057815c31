package wealth

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/vleite/wealth/date"
)

// BRL is a helper for test to create reporting-currency money from const
func BRL(v float64) Money { return M(v, "BRL") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// mustPosition builds a position or fails the test.
func mustPosition(t *testing.T, symbol string, qty float64, target Percent, costBasis Money) Position {
	t.Helper()
	p, err := NewPosition(symbol, Q(qty), target, costBasis)
	if err != nil {
		t.Fatalf("NewPosition(%q): %v", symbol, err)
	}
	return p
}

// closeOnly returns a series with a single raw close price, today.
func closeOnly(v float64) *Series {
	s := &Series{}
	s.Close.Append(date.Today(), decimal.NewFromFloat(v))
	return s
}

// adjustedAndClose returns a series carrying both price fields, today.
func adjustedAndClose(adj, close float64) *Series {
	s := closeOnly(close)
	s.AdjClose.Append(date.Today(), decimal.NewFromFloat(adj))
	return s
}

// stubProvider serves canned series and records what was asked of it.
type stubProvider struct {
	series  map[string]*Series
	err     error
	calls   int
	batches [][]string
}

func (s *stubProvider) Fetch(symbols []string, r date.Range) (map[string]*Series, error) {
	s.calls++
	s.batches = append(s.batches, symbols)
	if s.err != nil {
		return nil, s.err
	}
	out := make(map[string]*Series)
	for _, sym := range symbols {
		if se, ok := s.series[sym]; ok {
			out[sym] = se
		}
	}
	return out, nil
}
