package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"networth-sim/internal/model"
	"networth-sim/internal/simulation"

	"gopkg.in/yaml.v3"
)

// DefaultYears is the projection horizon used when a scenario does not set one.
const DefaultYears = 20

// MaxYears bounds the horizon at the input boundary. The engine itself is a
// bounded CPU loop and does not care, but nothing useful lives past 50 years
// of flat-rate projection.
const MaxYears = 50

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load the scenario from a separate YAML preset
	// (e.g. examples/scenarios/*.yaml). Fields set on Scenario override
	// the preset.
	ScenarioFile string `yaml:"scenario_file"`

	Scenario ScenarioConfig `yaml:"scenario"`

	// Scenarios is the multi-scenario form used by `cli compare`.
	Scenarios []ScenarioConfig `yaml:"scenarios"`
}

// ScenarioConfig describes one household projection: initial state, recurring
// cash flows, scheduled events and run parameters.
type ScenarioConfig struct {
	Name               string           `yaml:"name"`
	InitialCash        float64          `yaml:"initial_cash"`
	InitialInvestments float64          `yaml:"initial_investments"`
	AnnualSalary       float64          `yaml:"annual_salary"`
	LivingExpenses     float64          `yaml:"living_expenses"`
	AnnualReturnRate   float64          `yaml:"annual_return_rate"`
	Years              int              `yaml:"years"`
	Properties         []PropertyConfig `yaml:"properties"`
	Events             []EventConfig    `yaml:"events"`
}

// PropertyConfig is the YAML shape of a property, loan included.
type PropertyConfig struct {
	Name         string     `yaml:"name"`
	GrossValue   float64    `yaml:"gross_value"`
	BuyingTaxes  float64    `yaml:"buying_taxes"`
	Debt         float64    `yaml:"debt"`
	TaxeFonciere float64    `yaml:"taxe_fonciere"`
	ChargesCopro float64    `yaml:"charges_copro"`
	Loan         LoanConfig `yaml:"loan"`
}

type LoanConfig struct {
	Amount        float64 `yaml:"amount"`
	DurationYears int     `yaml:"duration_years"`
	AnnualRate    float64 `yaml:"annual_rate"`
}

// CashFlowConfig is the shared YAML shape of incomes and expenses.
type CashFlowConfig struct {
	Name         string  `yaml:"name"`
	YearlyAmount float64 `yaml:"yearly_amount"`
}

// EventConfig is the YAML shape of a scheduled event. Exactly one payload
// field must be set, matching the action: income for ADD_INCOME, expense for
// ADD_EXPENSE, property for BUY_PROPERTY, name for the remove/sell actions.
type EventConfig struct {
	Year     int             `yaml:"year"`
	Action   string          `yaml:"action"`
	Income   *CashFlowConfig `yaml:"income,omitempty"`
	Expense  *CashFlowConfig `yaml:"expense,omitempty"`
	Property *PropertyConfig `yaml:"property,omitempty"`
	Name     string          `yaml:"name,omitempty"`
}

// Load reads, merges, defaults and validates a config file.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.Scenario.ApplyDefaults()
	for i := range c.Scenarios {
		c.Scenarios[i].ApplyDefaults()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not default or validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If scenario_file is set, load it and merge in any explicit overrides
	// from c.Scenario.
	if c.ScenarioFile != "" {
		presetPath := c.ScenarioFile
		if !filepath.IsAbs(presetPath) {
			// Prefer interpreting relative paths as relative to the config file
			// directory, falling back to the path as given.
			cand := filepath.Join(filepath.Dir(path), presetPath)
			if _, err := os.Stat(cand); err == nil {
				presetPath = cand
			}
		}
		preset, err := LoadScenarioPreset(presetPath)
		if err != nil {
			return nil, err
		}
		c.Scenario = MergeScenario(preset, c.Scenario)
	}
	return &c, nil
}

// LoadScenarioPreset reads a single-scenario YAML file (the `scenario:` form).
func LoadScenarioPreset(path string) (ScenarioConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ScenarioConfig{}, err
	}
	var w struct {
		Scenario ScenarioConfig `yaml:"scenario"`
	}
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ScenarioConfig{}, err
	}
	return w.Scenario, nil
}

// MergeScenario overlays non-zero fields from override onto base. Used when a
// scenario references a preset file and then applies local overrides.
func MergeScenario(base, override ScenarioConfig) ScenarioConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.InitialCash != 0 {
		out.InitialCash = override.InitialCash
	}
	if override.InitialInvestments != 0 {
		out.InitialInvestments = override.InitialInvestments
	}
	if override.AnnualSalary != 0 {
		out.AnnualSalary = override.AnnualSalary
	}
	if override.LivingExpenses != 0 {
		out.LivingExpenses = override.LivingExpenses
	}
	if override.AnnualReturnRate != 0 {
		out.AnnualReturnRate = override.AnnualReturnRate
	}
	if override.Years != 0 {
		out.Years = override.Years
	}
	if len(override.Properties) > 0 {
		out.Properties = override.Properties
	}
	if len(override.Events) > 0 {
		out.Events = override.Events
	}
	return out
}

// ApplyDefaults fills in the horizon and return rate when omitted.
// A return rate of exactly 0 is treated as "not set"; an interest-free world
// is not a scenario anyone configures on purpose.
func (s *ScenarioConfig) ApplyDefaults() {
	if s.Years == 0 {
		s.Years = DefaultYears
	}
	if s.AnnualReturnRate == 0 {
		s.AnnualReturnRate = simulation.DefaultAnnualReturn
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if len(c.Scenarios) > 0 {
		seen := map[string]bool{}
		for i := range c.Scenarios {
			if err := c.Scenarios[i].Validate(); err != nil {
				return fmt.Errorf("scenario %d: %w", i, err)
			}
			name := c.Scenarios[i].Name
			if name == "" {
				return fmt.Errorf("scenario %d: name is required in a multi-scenario file", i)
			}
			if seen[name] {
				return fmt.Errorf("duplicate scenario name: %q", name)
			}
			seen[name] = true
		}
		return nil
	}
	return c.Scenario.Validate()
}

// Validate is the boundary check for scenario inputs. The engine does not
// validate; everything entering it goes through here (or the API equivalent).
func (s *ScenarioConfig) Validate() error {
	if s.Years < 1 || s.Years > MaxYears {
		return fmt.Errorf("years must be within 1..%d, got %d", MaxYears, s.Years)
	}
	if s.AnnualReturnRate < 0 || s.AnnualReturnRate > 1 {
		return fmt.Errorf("annual_return_rate must be in [0, 1], got %v", s.AnnualReturnRate)
	}
	names := map[string]bool{}
	for i, pc := range s.Properties {
		p := pc.ToProperty()
		if err := p.Validate(); err != nil {
			return fmt.Errorf("property %d: %w", i, err)
		}
		if names[p.Name] {
			return fmt.Errorf("duplicate property name: %q", p.Name)
		}
		names[p.Name] = true
	}
	for i, ec := range s.Events {
		if err := ec.Validate(); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}
	return nil
}

func (e *EventConfig) Validate() error {
	if e.Year < 1 {
		return fmt.Errorf("event year must be >= 1, got %d", e.Year)
	}
	action, err := model.ParseAction(e.Action)
	if err != nil {
		return err
	}
	switch action {
	case model.ActionAddIncome:
		if e.Income == nil {
			return errors.New("ADD_INCOME requires an income payload")
		}
		if e.Income.Name == "" {
			return errors.New("income name is required")
		}
	case model.ActionAddExpense:
		if e.Expense == nil {
			return errors.New("ADD_EXPENSE requires an expense payload")
		}
		if e.Expense.Name == "" {
			return errors.New("expense name is required")
		}
	case model.ActionBuyProperty:
		if e.Property == nil {
			return errors.New("BUY_PROPERTY requires a property payload")
		}
		p := e.Property.ToProperty()
		if err := p.Validate(); err != nil {
			return err
		}
	case model.ActionRemoveIncome, model.ActionRemoveExpense, model.ActionSellProperty:
		if e.Name == "" {
			return fmt.Errorf("%s requires a name", action)
		}
	}
	return nil
}

// ToProperty derives the loan schedule from the config values.
func (pc PropertyConfig) ToProperty() model.Property {
	return model.NewProperty(
		pc.Name,
		pc.GrossValue,
		pc.BuyingTaxes,
		pc.Debt,
		pc.TaxeFonciere,
		pc.ChargesCopro,
		model.Loan{
			Amount:        pc.Loan.Amount,
			DurationYears: pc.Loan.DurationYears,
			AnnualRate:    pc.Loan.AnnualRate,
		},
	)
}

// ToEvent converts the config shape into the engine's tagged variant.
// Validate must have passed; a payload/action mismatch surfaces here too.
func (e EventConfig) ToEvent() (simulation.Event, error) {
	action, err := model.ParseAction(e.Action)
	if err != nil {
		return nil, err
	}
	switch action {
	case model.ActionAddIncome:
		if e.Income == nil {
			return nil, errors.New("ADD_INCOME requires an income payload")
		}
		return simulation.AddIncome{At: e.Year, Income: model.Income{Name: e.Income.Name, YearlyAmount: e.Income.YearlyAmount}}, nil
	case model.ActionRemoveIncome:
		return simulation.RemoveIncome{At: e.Year, Name: e.Name}, nil
	case model.ActionAddExpense:
		if e.Expense == nil {
			return nil, errors.New("ADD_EXPENSE requires an expense payload")
		}
		return simulation.AddExpense{At: e.Year, Expense: model.Expense{Name: e.Expense.Name, YearlyAmount: e.Expense.YearlyAmount}}, nil
	case model.ActionRemoveExpense:
		return simulation.RemoveExpense{At: e.Year, Name: e.Name}, nil
	case model.ActionBuyProperty:
		if e.Property == nil {
			return nil, errors.New("BUY_PROPERTY requires a property payload")
		}
		return simulation.BuyProperty{At: e.Year, Property: e.Property.ToProperty()}, nil
	case model.ActionSellProperty:
		return simulation.SellProperty{At: e.Year, Name: e.Name}, nil
	default:
		return nil, fmt.Errorf("unknown action: %q", e.Action)
	}
}

// NewSimulation builds a fresh engine instance from the scenario. Every call
// constructs independent copies of all entities, so repeated runs (and
// side-by-side comparisons) never share mutable state.
//
// Initial cash is folded into investments up front: the engine treats cash as
// an intra-year clearing value only.
func (s *ScenarioConfig) NewSimulation() (*simulation.Simulation, error) {
	properties := make([]model.Property, 0, len(s.Properties))
	for _, pc := range s.Properties {
		properties = append(properties, pc.ToProperty())
	}

	events := make([]simulation.Event, 0, len(s.Events))
	for i, ec := range s.Events {
		ev, err := ec.ToEvent()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, ev)
	}

	networth := &model.NetWorth{
		Cash:        0,
		Investments: s.InitialInvestments + s.InitialCash,
		Properties:  properties,
	}
	incomes := []model.Income{{Name: "Salary", YearlyAmount: s.AnnualSalary}}
	expenses := []model.Expense{{Name: "Living expenses", YearlyAmount: s.LivingExpenses}}

	return simulation.New(networth, incomes, expenses, events, s.AnnualReturnRate), nil
}
