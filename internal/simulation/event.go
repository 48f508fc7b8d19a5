package simulation

import (
	"networth-sim/internal/model"
)

// FixedSellingCost is deducted from the proceeds of every property sale
// (notary/agency flat fee assumption).
const FixedSellingCost = 1000

// Event is a scheduled action that mutates the simulation when its year is
// reached. Events are immutable once created; applying one returns nothing
// and never fails. Removing or selling a name that does not exist is a
// deliberate no-op.
//
// One concrete type per action kind carries exactly the fields that action
// needs, so handling stays exhaustive at compile time.
type Event interface {
	Year() int
	Action() model.Action
	Apply(s *Simulation)
}

// AddIncome appends a new recurring income.
type AddIncome struct {
	At     int
	Income model.Income
}

func (e AddIncome) Year() int            { return e.At }
func (e AddIncome) Action() model.Action { return model.ActionAddIncome }
func (e AddIncome) Apply(s *Simulation) {
	s.incomes = append(s.incomes, e.Income)
}

// RemoveIncome drops the income whose name matches.
type RemoveIncome struct {
	At   int
	Name string
}

func (e RemoveIncome) Year() int            { return e.At }
func (e RemoveIncome) Action() model.Action { return model.ActionRemoveIncome }
func (e RemoveIncome) Apply(s *Simulation) {
	kept := s.incomes[:0]
	for _, i := range s.incomes {
		if i.Name != e.Name {
			kept = append(kept, i)
		}
	}
	s.incomes = kept
}

// AddExpense appends a new recurring expense.
type AddExpense struct {
	At      int
	Expense model.Expense
}

func (e AddExpense) Year() int            { return e.At }
func (e AddExpense) Action() model.Action { return model.ActionAddExpense }
func (e AddExpense) Apply(s *Simulation) {
	s.expenses = append(s.expenses, e.Expense)
}

// RemoveExpense drops the expense whose name matches.
type RemoveExpense struct {
	At   int
	Name string
}

func (e RemoveExpense) Year() int            { return e.At }
func (e RemoveExpense) Action() model.Action { return model.ActionRemoveExpense }
func (e RemoveExpense) Apply(s *Simulation) {
	kept := s.expenses[:0]
	for _, x := range s.expenses {
		if x.Name != e.Name {
			kept = append(kept, x)
		}
	}
	s.expenses = kept
}

// BuyProperty funds a purchase (gross value + buying taxes) from investments
// first; only the shortfall comes out of cash, which may go negative for the
// rest of the tick. The same year's cash sweep reconciles it.
type BuyProperty struct {
	At       int
	Property model.Property
}

func (e BuyProperty) Year() int            { return e.At }
func (e BuyProperty) Action() model.Action { return model.ActionBuyProperty }
func (e BuyProperty) Apply(s *Simulation) {
	cost := e.Property.GrossValue + e.Property.BuyingTaxes

	if s.networth.Investments >= cost {
		s.networth.Investments -= cost
	} else {
		remaining := cost - s.networth.Investments
		s.networth.Investments = 0
		s.networth.Cash -= remaining
	}

	s.networth.Properties = append(s.networth.Properties, e.Property)
}

// SellProperty credits cash with gross value - debt - FixedSellingCost and
// removes the property. Selling a name that is not owned is a no-op.
type SellProperty struct {
	At   int
	Name string
}

func (e SellProperty) Year() int            { return e.At }
func (e SellProperty) Action() model.Action { return model.ActionSellProperty }
func (e SellProperty) Apply(s *Simulation) {
	p := s.networth.Property(e.Name)
	if p == nil {
		return
	}
	s.networth.Cash += p.GrossValue - p.Debt - FixedSellingCost
	s.networth.RemoveProperty(e.Name)
}
