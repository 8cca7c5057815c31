package wealth

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vleite/wealth/date"
)

// Series holds the raw daily price fields a quote provider returned for one
// symbol. AdjClose may be empty when the source has no adjusted prices.
type Series struct {
	Close    date.History[decimal.Decimal]
	AdjClose date.History[decimal.Decimal]
}

// QuoteProvider fetches daily price series for a batch of symbols over a
// trailing window. Symbols the provider cannot serve are simply absent from
// the result; an error is returned only when the provider is unreachable or
// its response is unusable as a whole.
type QuoteProvider interface {
	Fetch(symbols []string, r date.Range) (map[string]*Series, error)
}

// QuoteStatus qualifies the outcome of a resolution cycle, so that callers
// can tell "no data", "partial data" and "provider down" apart instead of
// receiving an indistinguishable empty result.
type QuoteStatus int

const (
	StatusOK QuoteStatus = iota
	StatusPartial
	StatusNoData
	StatusProviderError
)

func (s QuoteStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusPartial:
		return "partial"
	case StatusNoData:
		return "no data"
	case StatusProviderError:
		return "provider error"
	default:
		return "unknown"
	}
}

// QuoteSet is the immutable result of one resolution cycle: a best-effort
// mapping from symbol to latest unit price, the exchange rate for the
// reporting currency pair, and the set of symbols that could not be
// resolved. A symbol absent from the mapping is unresolved, never zero.
type QuoteSet struct {
	prices     map[string]decimal.Decimal
	unresolved map[string]bool
	rate       decimal.Decimal
	hasRate    bool
	status     QuoteStatus
	at         time.Time
}

// Price returns the resolved unit price for a symbol.
func (q *QuoteSet) Price(symbol string) (decimal.Decimal, bool) {
	p, ok := q.prices[symbol]
	return p, ok
}

// Rate returns the exchange rate resolved for the reference currency pair,
// from the same data snapshot as the asset prices.
func (q *QuoteSet) Rate() (decimal.Decimal, bool) {
	return q.rate, q.hasRate
}

// Status reports how the resolution cycle went.
func (q *QuoteSet) Status() QuoteStatus { return q.status }

// Unresolved returns the sorted set of symbols that have no resolvable price.
func (q *QuoteSet) Unresolved() []string {
	symbols := make([]string, 0, len(q.unresolved))
	for s := range q.unresolved {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

// IsUnresolved reports whether the symbol was requested but not resolved.
func (q *QuoteSet) IsUnresolved(symbol string) bool { return q.unresolved[symbol] }

// At returns the time the quotes were resolved.
func (q *QuoteSet) At() time.Time { return q.at }
