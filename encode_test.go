package wealth

import (
	"strings"
	"testing"
)

func TestEncodePortfolioRoundTrip(t *testing.T) {
	f := NewPortfolio()
	f.Append(mustPosition(t, "ITUB3.SA", 920, 15, Money{}))
	f.Append(mustPosition(t, "SCHD", 60, 15, BRL(9000)))
	f.Append(mustPosition(t, "BTC-USD", 0.00000001, 5, Money{}))
	f.Append(mustPosition(t, "RF-CDB-2027", 1, 10, BRL(50000)))
	// duplicate lot, kept independent
	f.Append(mustPosition(t, "SCHD", 40, 15, Money{}))

	var sb strings.Builder
	if err := EncodePortfolio(&sb, f); err != nil {
		t.Fatalf("EncodePortfolio: %v", err)
	}

	back, err := DecodePortfolio(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("DecodePortfolio: %v", err)
	}
	if back.Len() != f.Len() {
		t.Fatalf("round trip Len() = %d, want %d", back.Len(), f.Len())
	}

	want := make([]Position, 0, f.Len())
	for p := range f.Positions() {
		want = append(want, p)
	}
	i := 0
	for p := range back.Positions() {
		w := want[i]
		if p.Symbol != w.Symbol || !p.Quantity.Equal(w.Quantity) || !p.Target.Equal(w.Target) || p.Class != w.Class {
			t.Errorf("position %d = %+v, want %+v", i, p, w)
		}
		if !p.CostBasis.Equal(w.CostBasis) {
			t.Errorf("position %d cost basis = %v, want %v", i, p.CostBasis, w.CostBasis)
		}
		i++
	}
}

func TestDecodePortfolioSkipsEmptyLines(t *testing.T) {
	in := `{"symbol":"SCHD","quantity":60,"target":15}

{"symbol":"STAG","quantity":80,"target":10}
`
	f, err := DecodePortfolio(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodePortfolio: %v", err)
	}
	if f.Len() != 2 {
		t.Errorf("Len() = %d, want 2", f.Len())
	}
}

func TestDecodePortfolioRejectsInvalidPositions(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{"negative quantity", `{"symbol":"SCHD","quantity":-1,"target":15}`},
		{"target over 100", `{"symbol":"SCHD","quantity":1,"target":150}`},
		{"blank symbol", `{"symbol":" ","quantity":1,"target":15}`},
		{"not json", `symbol=SCHD`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodePortfolio(strings.NewReader(tc.in)); err == nil {
				t.Error("DecodePortfolio should reject the line")
			}
		})
	}
}
