package simulation

import (
	"sort"

	"networth-sim/internal/model"
)

// DefaultAnnualReturn is the net annual return applied to investments when a
// scenario does not specify one.
const DefaultAnnualReturn = 0.029

// Simulation runs a household's finances forward one year at a time.
//
// It is single-threaded and owns its state exclusively; callers comparing
// scenarios must hand each Simulation its own deep copy of the initial
// entities (see model.NetWorth.Clone).
type Simulation struct {
	currentYear int
	networth    *model.NetWorth
	incomes     []model.Income
	expenses    []model.Expense
	events      []Event
	rAnnual     float64
	results     []YearRow
}

// New builds a simulation over the given initial state. Events may arrive in
// any order; they are kept sorted by year, ties broken by insertion order.
// rAnnual is the annual investment return as a fraction (0.03 = 3%).
//
// No input validation happens here: the engine runs whatever it is handed.
// Boundary layers (scenario files, API requests) validate before construction.
func New(networth *model.NetWorth, incomes []model.Income, expenses []model.Expense, events []Event, rAnnual float64) *Simulation {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Year() < sorted[j].Year() })

	return &Simulation{
		networth: networth,
		incomes:  incomes,
		expenses: expenses,
		events:   sorted,
		rAnnual:  rAnnual,
	}
}

// Run advances the simulation from the year after the last simulated one
// through `years`, recording one YearRow per tick. Calling Run again without
// Reset continues from the last recorded year; a horizon at or below the
// current year does nothing.
//
// Per-year tick, in fixed order: apply this year's events, amortize loans,
// net cash flow and sweep cash into investments, compound investments,
// record a snapshot.
func (s *Simulation) Run(years int) {
	for y := s.currentYear + 1; y <= years; y++ {
		s.currentYear = y
		s.applyYearlyEvents()
		s.updateLoans()
		s.applyExpensesAndIncomes()
		s.growInvestments()
		s.recordResults()
	}
}

// Reset clears the year counter and recorded results. It does not restore the
// initial net worth, incomes or expenses; callers wanting a true rewind must
// reconstruct the simulation.
func (s *Simulation) Reset() {
	s.currentYear = 0
	s.results = nil
}

// CurrentYear returns the last simulated year (0 before the first tick).
func (s *Simulation) CurrentYear() int { return s.currentYear }

// NetWorth exposes the live aggregate state.
func (s *Simulation) NetWorth() *model.NetWorth { return s.networth }

// Results returns the per-year snapshots recorded so far, oldest first.
func (s *Simulation) Results() []YearRow { return s.results }

func (s *Simulation) applyYearlyEvents() {
	for _, e := range s.events {
		if e.Year() == s.currentYear {
			e.Apply(s)
		}
	}
}

// updateLoans amortizes every financed property by one year. Once a loan's
// duration hits zero the debt and monthly payment are forced to zero, covering
// both retired loans and properties that were never financed.
func (s *Simulation) updateLoans() {
	for i := range s.networth.Properties {
		p := &s.networth.Properties[i]
		if p.Loan.DurationYears > 0 {
			p.Debt = model.Round2(p.Debt - p.YearlyAmortization)
			p.Loan.DurationYears--
		} else {
			p.Debt = 0
			p.MonthlyPayment = 0
		}
	}
}

// applyExpensesAndIncomes nets the year's cash flow into cash, then sweeps all
// cash into investments. Cash never carries between years.
func (s *Simulation) applyExpensesAndIncomes() {
	totalExpenses := model.SumExpenses(s.expenses) + s.propertyCarryingCost()
	available := model.SumIncomes(s.incomes) - totalExpenses

	s.networth.Cash += available
	s.networth.Investments += s.networth.Cash
	s.networth.Cash = 0
}

// growInvestments compounds the post-sweep balance, so the year's
// contributions earn a full year of return (not pro-rated).
func (s *Simulation) growInvestments() {
	s.networth.Investments = model.Round2(s.networth.Investments * (1 + s.rAnnual))
}

// recordResults appends the yearly snapshot. AvailableForInvestment is
// recomputed here from post-update state rather than reusing the value the
// cash sweep consumed; with the fixed tick order the two agree, but keep that
// in mind if the ordering ever changes.
func (s *Simulation) recordResults() {
	available := model.SumIncomes(s.incomes) - model.SumExpenses(s.expenses) - s.propertyCarryingCost()

	s.results = append(s.results, YearRow{
		Year:                   s.currentYear,
		AvailableForInvestment: available,
		Investments:            s.networth.Investments,
		NetWorth:               s.networth.Total(),
	})
}

func (s *Simulation) propertyCarryingCost() float64 {
	total := 0.0
	for _, p := range s.networth.Properties {
		total += p.CarryingCost()
	}
	return total
}
