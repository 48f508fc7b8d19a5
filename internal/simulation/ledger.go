package simulation

// YearRow is one row of per-year output.
// This is the primary artifact for "what happened" in a projection.
type YearRow struct {
	Year int

	// AvailableForInvestment is the net cash flow before the sweep:
	// incomes - expenses - property carrying costs, from post-update state.
	AvailableForInvestment float64

	Investments float64
	NetWorth    float64
}

// Result bundles a finished run for callers that want the series plus the
// headline figures.
type Result struct {
	Rows             []YearRow
	FinalNetWorth    float64
	FinalInvestments float64
}

// Result snapshots the simulation's recorded series.
func (s *Simulation) Result() *Result {
	res := &Result{Rows: s.results}
	if len(s.results) > 0 {
		last := s.results[len(s.results)-1]
		res.FinalNetWorth = last.NetWorth
		res.FinalInvestments = last.Investments
	} else {
		res.FinalNetWorth = s.networth.Total()
		res.FinalInvestments = s.networth.Investments
	}
	return res
}
