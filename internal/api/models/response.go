package models

// SimulateResponse represents the response from a projection run.
type SimulateResponse struct {
	ID      string            `json:"id"`
	Status  string            `json:"status"`
	Summary SimulationSummary `json:"summary"`
	Series  []YearRow         `json:"series,omitempty"`
}

// SimulationSummary contains the headline figures of a run.
type SimulationSummary struct {
	Scenario         string  `json:"scenario,omitempty"`
	YearsSimulated   int     `json:"years_simulated"`
	FinalNetWorth    float64 `json:"final_net_worth"`
	FinalInvestments float64 `json:"final_investments"`
	PropertiesOwned  int     `json:"properties_owned"`
}

// YearRow represents one simulated year in the series.
type YearRow struct {
	Year                   int     `json:"year"`
	AvailableForInvestment float64 `json:"available_for_investment"`
	Investments            float64 `json:"investments"`
	NetWorth               float64 `json:"net_worth"`
}

// SeriesResponse carries a stored run's per-year series.
type SeriesResponse struct {
	ID     string    `json:"id"`
	Series []YearRow `json:"series"`
}

// CompareResponse represents the response from a comparison run.
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one named scenario.
type ComparisonResult struct {
	Name    string            `json:"name"`
	Summary SimulationSummary `json:"summary"`
	Series  []YearRow         `json:"series,omitempty"`
}

// ScenarioInfo represents a preset scenario file.
type ScenarioInfo struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	File  string        `json:"file"`
	Specs ScenarioSpecs `json:"specs"`
}

// ScenarioSpecs summarizes a preset for listing.
type ScenarioSpecs struct {
	InitialCash        float64 `json:"initial_cash"`
	InitialInvestments float64 `json:"initial_investments"`
	AnnualSalary       float64 `json:"annual_salary"`
	LivingExpenses     float64 `json:"living_expenses"`
	Properties         int     `json:"properties"`
	Events             int     `json:"events"`
	Years              int     `json:"years"`
}

// ActionInfo documents one event action for form-building clients.
type ActionInfo struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Payload     []FieldInfo `json:"payload"`
}

// FieldInfo describes one payload field of an action.
type FieldInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // "float", "int", "string", "object"
	Description string `json:"description"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
