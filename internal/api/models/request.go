package models

import "networth-sim/internal/config"

// SimulateRequest represents the request body for running a projection.
// Either scenario_file (a preset under SCENARIO_DIR, without extension) or an
// inline scenario must be provided; inline fields override preset fields.
type SimulateRequest struct {
	ScenarioFile string          `json:"scenario_file,omitempty"`
	Scenario     ScenarioPayload `json:"scenario,omitempty"`
	Options      SimulateOptions `json:"options,omitempty"`
}

// ScenarioPayload is the wire shape of a scenario.
type ScenarioPayload struct {
	Name               string           `json:"name,omitempty"`
	InitialCash        float64          `json:"initial_cash,omitempty"`
	InitialInvestments float64          `json:"initial_investments,omitempty"`
	AnnualSalary       float64          `json:"annual_salary,omitempty"`
	LivingExpenses     float64          `json:"living_expenses,omitempty"`
	AnnualReturnRate   float64          `json:"annual_return_rate,omitempty"`
	Years              int              `json:"years,omitempty"`
	Properties         []PropertyPayload `json:"properties,omitempty"`
	Events             []EventPayload    `json:"events,omitempty"`
}

// PropertyPayload defines a property, loan included.
type PropertyPayload struct {
	Name         string      `json:"name"`
	GrossValue   float64     `json:"gross_value"`
	BuyingTaxes  float64     `json:"buying_taxes,omitempty"`
	Debt         float64     `json:"debt,omitempty"`
	TaxeFonciere float64     `json:"taxe_fonciere,omitempty"`
	ChargesCopro float64     `json:"charges_copro,omitempty"`
	Loan         LoanPayload `json:"loan,omitempty"`
}

type LoanPayload struct {
	Amount        float64 `json:"amount,omitempty"`
	DurationYears int     `json:"duration_years,omitempty"`
	AnnualRate    float64 `json:"annual_rate,omitempty"`
}

// CashFlowPayload is the shared shape of incomes and expenses.
type CashFlowPayload struct {
	Name         string  `json:"name"`
	YearlyAmount float64 `json:"yearly_amount"`
}

// EventPayload is a scheduled event. The payload field must match the action:
// income for ADD_INCOME, expense for ADD_EXPENSE, property for BUY_PROPERTY,
// name for REMOVE_INCOME/REMOVE_EXPENSE/SELL_PROPERTY.
type EventPayload struct {
	Year     int              `json:"year" binding:"required"`
	Action   string           `json:"action" binding:"required"`
	Income   *CashFlowPayload `json:"income,omitempty"`
	Expense  *CashFlowPayload `json:"expense,omitempty"`
	Property *PropertyPayload `json:"property,omitempty"`
	Name     string           `json:"name,omitempty"`
}

// SimulateOptions contains optional run parameters.
type SimulateOptions struct {
	Years         int  `json:"years,omitempty"`          // 0 = scenario's horizon
	IncludeSeries bool `json:"include_series,omitempty"` // default: false
}

// CompareRequest represents a request to run several named scenarios over a
// shared horizon. Each variation is merged onto the base scenario.
type CompareRequest struct {
	ScenarioFile string              `json:"scenario_file,omitempty"`
	BaseScenario ScenarioPayload     `json:"base_scenario,omitempty"`
	Variations   []ScenarioVariation `json:"variations" binding:"required"`
	Options      SimulateOptions     `json:"options,omitempty"`
}

// ScenarioVariation defines one named scenario to compare.
type ScenarioVariation struct {
	Name     string          `json:"name" binding:"required"`
	Scenario ScenarioPayload `json:"scenario,omitempty"`
}

// ToConfig converts the wire shape into the config shape the engine builders
// consume.
func (p ScenarioPayload) ToConfig() config.ScenarioConfig {
	out := config.ScenarioConfig{
		Name:               p.Name,
		InitialCash:        p.InitialCash,
		InitialInvestments: p.InitialInvestments,
		AnnualSalary:       p.AnnualSalary,
		LivingExpenses:     p.LivingExpenses,
		AnnualReturnRate:   p.AnnualReturnRate,
		Years:              p.Years,
	}
	for _, pp := range p.Properties {
		out.Properties = append(out.Properties, pp.toConfig())
	}
	for _, ep := range p.Events {
		ev := config.EventConfig{
			Year:   ep.Year,
			Action: ep.Action,
			Name:   ep.Name,
		}
		if ep.Income != nil {
			ev.Income = &config.CashFlowConfig{Name: ep.Income.Name, YearlyAmount: ep.Income.YearlyAmount}
		}
		if ep.Expense != nil {
			ev.Expense = &config.CashFlowConfig{Name: ep.Expense.Name, YearlyAmount: ep.Expense.YearlyAmount}
		}
		if ep.Property != nil {
			pc := ep.Property.toConfig()
			ev.Property = &pc
		}
		out.Events = append(out.Events, ev)
	}
	return out
}

func (p PropertyPayload) toConfig() config.PropertyConfig {
	return config.PropertyConfig{
		Name:         p.Name,
		GrossValue:   p.GrossValue,
		BuyingTaxes:  p.BuyingTaxes,
		Debt:         p.Debt,
		TaxeFonciere: p.TaxeFonciere,
		ChargesCopro: p.ChargesCopro,
		Loan: config.LoanConfig{
			Amount:        p.Loan.Amount,
			DurationYears: p.Loan.DurationYears,
			AnnualRate:    p.Loan.AnnualRate,
		},
	}
}
