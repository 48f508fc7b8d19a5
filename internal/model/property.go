package model

import (
	"errors"
	"math"
)

// Loan describes the optional financing attached to a property.
// Units:
// - Amount: principal borrowed
// - DurationYears: remaining loan duration in years
// - AnnualRate: annual interest rate as a fraction 0..1 (e.g. 0.02 = 2%)
type Loan struct {
	Amount        float64
	DurationYears int
	AnnualRate    float64
}

// Property is a real estate holding, optionally financed.
// Name is the unique key within an owner's holdings.
// TaxeFonciere and ChargesCopro are annual carrying costs.
type Property struct {
	Name         string
	GrossValue   float64
	BuyingTaxes  float64
	Debt         float64
	TaxeFonciere float64
	ChargesCopro float64

	Loan Loan

	// Derived at construction; never recomputed afterwards. The simulation
	// engine is the only writer (yearly debt reduction, loan retirement).
	MonthlyPayment     float64
	YearlyAmortization float64
}

// NewProperty builds a property and derives its loan schedule.
//
// Monthly payment uses the standard amortizing-annuity formula on the monthly
// rate over DurationYears*12 installments, rounded to 2 decimals. Yearly
// amortization is straight-line (Amount / DurationYears) and deliberately does
// not follow the annuity principal curve. A loan with zero duration or zero
// rate yields a zero schedule.
func NewProperty(name string, grossValue, buyingTaxes, debt, taxeFonciere, chargesCopro float64, loan Loan) Property {
	p := Property{
		Name:         name,
		GrossValue:   grossValue,
		BuyingTaxes:  buyingTaxes,
		Debt:         debt,
		TaxeFonciere: taxeFonciere,
		ChargesCopro: chargesCopro,
		Loan:         loan,
	}
	p.MonthlyPayment, p.YearlyAmortization = loan.schedule()
	return p
}

// schedule returns (monthly payment, yearly amortization).
func (l Loan) schedule() (float64, float64) {
	n := l.DurationYears * 12
	r := l.AnnualRate / 12

	if n <= 0 || r <= 0 {
		return 0, 0
	}
	payment := Round2(l.Amount / ((math.Pow(1+r, float64(n)) - 1) / (r * math.Pow(1+r, float64(n)))))
	amortization := l.Amount / float64(l.DurationYears)
	return payment, amortization
}

// CarryingCost is the recurring annual cost of holding the property:
// taxe foncière + charges copro + 12 monthly loan payments.
func (p Property) CarryingCost() float64 {
	return p.TaxeFonciere + p.ChargesCopro + p.MonthlyPayment*12
}

// Equity is the property's contribution to net worth.
func (p Property) Equity() float64 {
	return p.GrossValue - p.Debt
}

// Validate is a boundary check for inputs coming from scenario files or API
// requests. The simulation engine itself never validates (it runs whatever it
// is handed); callers constructing properties from untrusted input should.
func (p Property) Validate() error {
	if p.Name == "" {
		return errors.New("property name is required")
	}
	if p.GrossValue < 0 {
		return errors.New("gross value must be >= 0")
	}
	if p.BuyingTaxes < 0 {
		return errors.New("buying taxes must be >= 0")
	}
	if p.Debt < 0 {
		return errors.New("debt must be >= 0")
	}
	if p.TaxeFonciere < 0 || p.ChargesCopro < 0 {
		return errors.New("annual property costs must be >= 0")
	}
	if p.Loan.Amount < 0 {
		return errors.New("loan amount must be >= 0")
	}
	if p.Loan.DurationYears < 0 {
		return errors.New("loan duration must be >= 0")
	}
	if p.Loan.AnnualRate < 0 || p.Loan.AnnualRate > 1 {
		return errors.New("loan rate must be in [0, 1]")
	}
	return nil
}

// Round2 rounds to 2 decimal places. All monetary mutations in the engine go
// through this to keep results stable across runs.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
