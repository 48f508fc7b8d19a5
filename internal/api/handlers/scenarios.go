package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"networth-sim/internal/api/models"
	"networth-sim/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ScenarioHandler serves the preset scenario catalog.
type ScenarioHandler struct {
	scenarioDir string
}

// NewScenarioHandler creates a scenario handler over the given preset
// directory.
func NewScenarioHandler(scenarioDir string) *ScenarioHandler {
	abs, err := filepath.Abs(scenarioDir)
	if err == nil {
		scenarioDir = abs
	}
	return &ScenarioHandler{scenarioDir: scenarioDir}
}

// ScenarioDir returns the preset directory path.
func (h *ScenarioHandler) ScenarioDir() string {
	return h.scenarioDir
}

// ListScenarios handles GET /api/v1/scenarios.
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	scenarios := []models.ScenarioInfo{}

	entries, err := os.ReadDir(h.scenarioDir)
	if err != nil {
		log.Warn().Str("dir", h.scenarioDir).Err(err).Msg("scenario directory unreadable")
		c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
		return
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".yaml")
		sc, err := config.LoadScenarioPreset(filepath.Join(h.scenarioDir, e.Name()))
		if err != nil {
			log.Warn().Str("file", e.Name()).Err(err).Msg("skipping unreadable scenario preset")
			continue
		}

		name := sc.Name
		if name == "" {
			name = id
		}
		scenarios = append(scenarios, models.ScenarioInfo{
			ID:   id,
			Name: name,
			File: e.Name(),
			Specs: models.ScenarioSpecs{
				InitialCash:        sc.InitialCash,
				InitialInvestments: sc.InitialInvestments,
				AnnualSalary:       sc.AnnualSalary,
				LivingExpenses:     sc.LivingExpenses,
				Properties:         len(sc.Properties),
				Events:             len(sc.Events),
				Years:              sc.Years,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}
