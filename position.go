package wealth

import (
	"fmt"
	"iter"
	"strings"
	"unicode"
)

// AssetClass tells the valuation how to treat a position. It is computed
// once when the position is created, never re-derived inside formulas.
type AssetClass string

const (
	// Domestic assets are already quoted in the reporting currency.
	Domestic AssetClass = "domestic"
	// Foreign assets are quoted in the reference foreign currency and
	// need conversion. Crypto quotes fall in this class too.
	Foreign AssetClass = "foreign"
	// FixedValue instruments have no market quote: their value is the
	// declared cost basis (e.g. a bank certificate).
	FixedValue AssetClass = "fixed"
)

// domesticSuffix marks symbols listed on the domestic exchange (B3),
// quoted directly in the reporting currency.
const domesticSuffix = ".SA"

// fixedValuePrefix marks synthetic codes for fixed-income placeholders
// that have no market quote.
const fixedValuePrefix = "RF-"

// Classify returns the asset class for a symbol, per the naming convention.
func Classify(symbol string) AssetClass {
	switch {
	case strings.HasPrefix(symbol, fixedValuePrefix):
		return FixedValue
	case strings.HasSuffix(symbol, domesticSuffix):
		return Domestic
	default:
		return Foreign
	}
}

// NormalizeSymbol uppercases and trims a raw user symbol, and appends the
// domestic exchange suffix to bare B3 tickers (like PETR4) that follow the
// 4-letters-plus-digit convention.
func NormalizeSymbol(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if len(s) >= 5 && unicode.IsDigit(rune(s[len(s)-1])) &&
		!strings.Contains(s, domesticSuffix) && !strings.HasPrefix(s, fixedValuePrefix) {
		s += domesticSuffix
	}
	return s
}

// Position is a single holding: an instrument, how much of it is held, and
// what share of the portfolio it should represent. Duplicated symbols are
// allowed and kept as independent lots.
type Position struct {
	Symbol    string
	Quantity  Quantity
	Target    Percent
	CostBasis Money // optional; zero value means "not declared"
	Class     AssetClass
}

// NewPosition builds a validated position. The asset class is derived from
// the symbol once, here. Malformed input (blank symbol, negative quantity,
// target outside [0,100]) is a caller bug and is rejected; target weights
// that collectively exceed 100% are deliberately not checked.
func NewPosition(symbol string, quantity Quantity, target Percent, costBasis Money) (Position, error) {
	symbol = NormalizeSymbol(symbol)
	if symbol == "" {
		return Position{}, fmt.Errorf("position symbol cannot be blank")
	}
	if quantity.IsNegative() {
		return Position{}, fmt.Errorf("position %q: quantity %s cannot be negative", symbol, quantity)
	}
	if target < 0 || target > 100 {
		return Position{}, fmt.Errorf("position %q: target %s must be in [0,100]", symbol, target)
	}
	if costBasis.IsNegative() {
		return Position{}, fmt.Errorf("position %q: cost basis %s cannot be negative", symbol, costBasis)
	}
	class := Classify(symbol)
	if class == FixedValue && costBasis.IsZero() {
		return Position{}, fmt.Errorf("position %q: fixed-value instruments need a declared cost basis", symbol)
	}
	return Position{
		Symbol:    symbol,
		Quantity:  quantity,
		Target:    target,
		CostBasis: costBasis,
		Class:     class,
	}, nil
}

// HasCostBasis reports whether a cost basis was declared for the position.
func (p Position) HasCostBasis() bool { return !p.CostBasis.IsZero() }

func (p Position) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", p.Symbol)
	w.Append("quantity", p.Quantity)
	w.Append("target", float64(p.Target))
	if p.HasCostBasis() {
		w.Append("costBasis", p.CostBasis)
	}
	return w.MarshalJSON()
}

// Portfolio is an ordered, append-only collection of positions. The store
// supports appending and a full clear, nothing else: the engine never
// mutates it and takes a copy before each valuation cycle.
type Portfolio struct {
	positions []Position
}

// NewPortfolio returns a new empty portfolio.
func NewPortfolio() *Portfolio { return &Portfolio{} }

// Append adds a position at the end of the portfolio.
func (f *Portfolio) Append(p Position) { f.positions = append(f.positions, p) }

// Clear removes every position.
func (f *Portfolio) Clear() { f.positions = f.positions[:0] }

// Len returns the number of positions.
func (f *Portfolio) Len() int { return len(f.positions) }

// Positions iterates over the positions in insertion order.
func (f *Portfolio) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, p := range f.positions {
			if !yield(p) {
				return
			}
		}
	}
}

// Copy returns an independent snapshot of the portfolio, so that a
// valuation cycle stays internally consistent even if the caller keeps
// appending mid-cycle.
func (f *Portfolio) Copy() *Portfolio {
	c := &Portfolio{positions: make([]Position, len(f.positions))}
	copy(c.positions, f.positions)
	return c
}

// Symbols returns the set of quotable symbols held in the portfolio, in
// insertion order, without duplicates. Fixed-value instruments are not
// quotable and are left out.
func (f *Portfolio) Symbols() []string {
	seen := make(map[string]bool, len(f.positions))
	symbols := make([]string, 0, len(f.positions))
	for _, p := range f.positions {
		if p.Class == FixedValue || seen[p.Symbol] {
			continue
		}
		seen[p.Symbol] = true
		symbols = append(symbols, p.Symbol)
	}
	return symbols
}
