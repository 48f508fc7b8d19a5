package model

import "errors"

// Income is a recurring yearly income, flat over time (no inflation
// adjustment). Name is unique among currently active incomes.
type Income struct {
	Name         string
	YearlyAmount float64
}

// Expense is a recurring yearly expense, flat over time. Name is unique among
// currently active expenses.
type Expense struct {
	Name         string
	YearlyAmount float64
}

func (i Income) Validate() error {
	if i.Name == "" {
		return errors.New("income name is required")
	}
	return nil
}

func (e Expense) Validate() error {
	if e.Name == "" {
		return errors.New("expense name is required")
	}
	return nil
}

// SumIncomes totals yearly income amounts.
func SumIncomes(incomes []Income) float64 {
	total := 0.0
	for _, i := range incomes {
		total += i.YearlyAmount
	}
	return total
}

// SumExpenses totals yearly expense amounts.
func SumExpenses(expenses []Expense) float64 {
	total := 0.0
	for _, e := range expenses {
		total += e.YearlyAmount
	}
	return total
}
