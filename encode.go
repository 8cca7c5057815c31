package wealth

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// positionRecord is a specialized struct to decode a position line.
type positionRecord struct {
	Symbol    string          `json:"symbol"`
	Quantity  Quantity        `json:"quantity"`
	Target    float64         `json:"target"`
	CostBasis costBasisRecord `json:"costBasis"`
}

type costBasisRecord struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (c costBasisRecord) Money() Money {
	return M(c.Amount, c.Currency)
}

// EncodePortfolio writes the portfolio as JSONL, one position per line, in
// insertion order.
func EncodePortfolio(w io.Writer, f *Portfolio) error {
	for p := range f.Positions() {
		line, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("could not encode position %q: %w", p.Symbol, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

// DecodePortfolio reads positions from a stream of JSONL data, validates
// each line through the position constructor, and returns the portfolio in
// file order.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	f := NewPortfolio()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var rec positionRecord
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, fmt.Errorf("could not decode position on line %d: %w", line, err)
		}
		p, err := NewPosition(rec.Symbol, rec.Quantity, Percent(rec.Target), rec.CostBasis.Money())
		if err != nil {
			return nil, fmt.Errorf("invalid position on line %d: %w", line, err)
		}
		f.Append(p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read portfolio: %w", err)
	}
	return f, nil
}
