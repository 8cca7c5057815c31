package wealth

// Gain is the absolute and relative gain of a position against its
// declared cost basis.
type Gain struct {
	Symbol    string
	CostBasis Money
	Value     Money
	Absolute  Money
	Return    Percent // meaningless when HasReturn is false
	HasReturn bool    // false when there is no (or a zero) cost basis
}

func (g Gain) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", g.Symbol)
	w.Optional("costBasis", g.CostBasis)
	w.Append("value", g.Value)
	w.Append("gainAbs", g.Absolute)
	if g.HasReturn {
		w.Append("gainPct", float64(g.Return))
	}
	return w.MarshalJSON()
}

// Performance computes the gain of a valued position. With no declared
// cost basis the absolute gain is taken against zero and the percentage is
// reported as not available: never an infinity, never a division by zero.
func Performance(v ValuedPosition) Gain {
	basis := M(0, v.Value.Currency())
	if v.HasCostBasis() {
		basis = v.CostBasis
	}
	absolute := v.Value.Sub(basis)
	g := Gain{
		Symbol:    v.Symbol,
		CostBasis: basis,
		Value:     v.Value,
		Absolute:  absolute,
	}
	if basis.IsZero() {
		return g
	}
	g.Return = Percent(absolute.Amount().Div(basis.Amount()).InexactFloat64() * 100)
	g.HasReturn = true
	return g
}
