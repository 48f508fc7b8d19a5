package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"networth-sim/internal/api/models"
	"networth-sim/internal/config"
	"networth-sim/internal/simulation"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SimulateHandler handles projection runs.
type SimulateHandler struct {
	scenarioDir string
	store       *ResultStore
}

// NewSimulateHandler creates a simulate handler. scenarioDir is where preset
// scenario files referenced by scenario_file live.
func NewSimulateHandler(scenarioDir string, store *ResultStore) *SimulateHandler {
	if store == nil {
		store = NewResultStore(100)
	}
	return &SimulateHandler{scenarioDir: scenarioDir, store: store}
}

// RunSimulation handles POST /api/v1/simulate.
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	sc, err := h.buildScenario(req.ScenarioFile, req.Scenario)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SCENARIO",
				Message: err.Error(),
			},
		})
		return
	}

	years, err := horizon(sc, req.Options)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_HORIZON",
				Message: err.Error(),
			},
		})
		return
	}

	sim, err := sc.NewSimulation()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SCENARIO",
				Message: err.Error(),
			},
		})
		return
	}
	sim.Run(years)
	result := sim.Result()

	id := h.store.Put(result)
	response := models.SimulateResponse{
		ID:      id,
		Status:  "completed",
		Summary: buildSummary(sc.Name, sim, result),
	}
	if req.Options.IncludeSeries {
		response.Series = convertSeries(result.Rows)
	}

	c.JSON(http.StatusOK, response)
}

// GetSeries handles GET /api/v1/simulate/:id/series.
func (h *SimulateHandler) GetSeries(c *gin.Context) {
	id := c.Param("id")
	result, ok := h.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "RESULT_NOT_FOUND",
				Message: fmt.Sprintf("no stored result for id %q; results are kept in memory and expire", id),
			},
		})
		return
	}
	c.JSON(http.StatusOK, models.SeriesResponse{
		ID:     id,
		Series: convertSeries(result.Rows),
	})
}

// CompareSimulations handles POST /api/v1/simulate/compare. Every variation is
// merged onto the base scenario and run over the shared horizon; each run gets
// its own freshly built state, so scenarios never alias.
func (h *SimulateHandler) CompareSimulations(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	base, err := h.buildScenario(req.ScenarioFile, req.BaseScenario)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SCENARIO",
				Message: err.Error(),
			},
		})
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		sc := config.MergeScenario(base, variation.Scenario.ToConfig())
		sc.Name = variation.Name
		sc.ApplyDefaults()
		if err := sc.Validate(); err != nil {
			log.Warn().Str("variation", variation.Name).Err(err).Msg("skipping invalid variation")
			continue
		}

		years, err := horizon(sc, req.Options)
		if err != nil {
			log.Warn().Str("variation", variation.Name).Err(err).Msg("skipping invalid variation")
			continue
		}

		sim, err := sc.NewSimulation()
		if err != nil {
			log.Warn().Str("variation", variation.Name).Err(err).Msg("skipping invalid variation")
			continue
		}
		sim.Run(years)
		result := sim.Result()

		cr := models.ComparisonResult{
			Name:    variation.Name,
			Summary: buildSummary(variation.Name, sim, result),
		}
		if req.Options.IncludeSeries {
			cr.Series = convertSeries(result.Rows)
		}
		comparison = append(comparison, cr)
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// buildScenario resolves an optional preset file and merges the inline payload
// on top, then defaults and validates.
func (h *SimulateHandler) buildScenario(presetName string, payload models.ScenarioPayload) (config.ScenarioConfig, error) {
	sc := payload.ToConfig()

	if presetName != "" {
		presetPath := filepath.Join(h.scenarioDir, presetName+".yaml")
		preset, err := config.LoadScenarioPreset(presetPath)
		if err != nil {
			return config.ScenarioConfig{}, fmt.Errorf("load scenario preset %q: %w", presetName, err)
		}
		sc = config.MergeScenario(preset, sc)
	}

	sc.ApplyDefaults()
	if err := sc.Validate(); err != nil {
		return config.ScenarioConfig{}, err
	}
	return sc, nil
}

// horizon picks the run length: request option wins over the scenario's own.
func horizon(sc config.ScenarioConfig, opts models.SimulateOptions) (int, error) {
	years := sc.Years
	if opts.Years != 0 {
		years = opts.Years
	}
	if years < 1 || years > config.MaxYears {
		return 0, fmt.Errorf("years must be within 1..%d, got %d", config.MaxYears, years)
	}
	return years, nil
}

func buildSummary(name string, sim *simulation.Simulation, result *simulation.Result) models.SimulationSummary {
	return models.SimulationSummary{
		Scenario:         name,
		YearsSimulated:   len(result.Rows),
		FinalNetWorth:    result.FinalNetWorth,
		FinalInvestments: result.FinalInvestments,
		PropertiesOwned:  len(sim.NetWorth().Properties),
	}
}

func convertSeries(rows []simulation.YearRow) []models.YearRow {
	out := make([]models.YearRow, len(rows))
	for i, r := range rows {
		out[i] = models.YearRow{
			Year:                   r.Year,
			AvailableForInvestment: r.AvailableForInvestment,
			Investments:            r.Investments,
			NetWorth:               r.NetWorth,
		}
	}
	return out
}
