package wealth

// Engine wires the resolver and the valuation pipeline together for whole
// valuation cycles. It holds no portfolio state: the caller owns the
// portfolio and passes it in each cycle.
type Engine struct {
	policy   Policy
	resolver *Resolver
}

// NewEngine returns an engine resolving quotes through the given provider.
func NewEngine(provider QuoteProvider, policy Policy) *Engine {
	return &Engine{
		policy:   policy,
		resolver: NewResolver(provider, policy.Pair),
	}
}

// Policy returns the engine's policy.
func (e *Engine) Policy() Policy { return e.policy }

// Valuate runs one valuation cycle: it snapshots the portfolio, resolves
// quotes for its symbols, prices every position and aggregates the result.
// Data-quality trouble (missing or stale quotes) degrades into exclusions
// and a status on the snapshot; the only error is ErrEmptyPortfolio.
func (e *Engine) Valuate(f *Portfolio) (*Snapshot, error) {
	f = f.Copy() // the cycle must not see mutations made mid-flight

	quotes := e.resolver.Resolve(f.Symbols())
	valuator := NewValuator(e.policy, quotes)

	var valued []ValuedPosition
	var excluded []string
	for p := range f.Positions() {
		vp, ok := valuator.Value(p, quotes)
		if !ok {
			excluded = append(excluded, p.Symbol)
			continue
		}
		valued = append(valued, vp)
	}

	snapshot, err := Analyze(e.policy, valued, excluded, quotes.Status())
	if err != nil {
		return nil, err
	}
	snapshot.ExchangeRate = M(valuator.Rate(), e.policy.ReportingCurrency)
	return snapshot, nil
}
