package wealth

import (
	"log"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vleite/wealth/date"
)

const (
	// defaultLookback is the trailing calendar window fetched per cycle.
	// Several days so that week-ends and market holidays still yield a
	// price after forward-filling.
	defaultLookback = 5

	// defaultCacheTTL bounds how long a resolved QuoteSet is reused for
	// the exact same symbol set.
	defaultCacheTTL = 10 * time.Minute
)

// Resolver turns a set of symbols into a QuoteSet using a quote provider.
// It never fails: provider trouble degrades into unresolved symbols and an
// explicit status on the result.
//
// The resolver is meant for a single session at a time; its memoization is
// not guarded for concurrent use.
type Resolver struct {
	provider QuoteProvider
	pair     string // reference currency pair symbol, fetched with every batch
	lookback int
	ttl      time.Duration
	now      func() time.Time

	cache map[string]*QuoteSet
}

// NewResolver returns a resolver using the given provider and reference
// currency pair symbol (e.g. "USDBRL=X").
func NewResolver(provider QuoteProvider, pair string) *Resolver {
	return &Resolver{
		provider: provider,
		pair:     NormalizeSymbol(pair),
		lookback: defaultLookback,
		ttl:      defaultCacheTTL,
		now:      time.Now,
		cache:    make(map[string]*QuoteSet),
	}
}

// Resolve returns a best-effort price mapping for the given symbols plus
// the exchange rate of the reference pair, taken from the same provider
// snapshot. Symbols are case-normalized and de-duplicated first; blank ones
// are discarded. The fallback chain per symbol is adjusted close, then raw
// close, then unresolved.
func (r *Resolver) Resolve(symbols []string) *QuoteSet {
	wanted := canonSymbols(symbols)

	key := strings.Join(wanted, " ")
	if cached, ok := r.cache[key]; ok && r.now().Sub(cached.at) < r.ttl {
		return cached
	}

	q := r.resolve(wanted)
	r.cache[key] = q
	return q
}

func (r *Resolver) resolve(wanted []string) *QuoteSet {
	q := &QuoteSet{
		prices:     make(map[string]decimal.Decimal, len(wanted)),
		unresolved: make(map[string]bool),
		at:         r.now(),
	}

	// The reference pair rides along in the same batch so that currency
	// conversion is consistent with the asset prices snapshot.
	batch := wanted
	if r.pair != "" {
		batch = append(append(make([]string, 0, len(wanted)+1), wanted...), r.pair)
	}

	window := date.LastDays(date.FromTime(q.at), r.lookback)
	series, err := r.provider.Fetch(batch, window)
	if err != nil {
		log.Printf("quote provider failed, continuing without prices: %v", err)
		for _, s := range wanted {
			q.unresolved[s] = true
		}
		q.status = StatusProviderError
		return q
	}

	for _, s := range wanted {
		price, ok := latestPrice(series[s])
		if !ok {
			q.unresolved[s] = true
			continue
		}
		q.prices[s] = price
	}

	if rate, ok := latestPrice(series[r.pair]); ok {
		q.rate, q.hasRate = rate, true
	}

	switch {
	case len(q.prices) == 0 && len(wanted) > 0:
		q.status = StatusNoData
	case len(q.unresolved) > 0:
		q.status = StatusPartial
	default:
		q.status = StatusOK
	}
	return q
}

// latestPrice applies the field fallback chain to one symbol's series and
// forward-fills by taking the most recent value available in the window.
func latestPrice(s *Series) (decimal.Decimal, bool) {
	if s == nil {
		return decimal.Decimal{}, false
	}
	if s.AdjClose.Len() > 0 {
		_, v := s.AdjClose.Latest()
		return v, true
	}
	if s.Close.Len() > 0 {
		_, v := s.Close.Latest()
		return v, true
	}
	return decimal.Decimal{}, false
}

// canonSymbols trims, uppercases, discards blanks and de-duplicates. The
// result is sorted so that it doubles as a stable cache key.
func canonSymbols(symbols []string) []string {
	seen := make(map[string]bool, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
