package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"networth-sim/internal/api/handlers"
	"networth-sim/internal/api/middleware"
	"networth-sim/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal().Err(err).Msg("load server config")
	}

	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if info, err := os.Stat(cfg.ScenarioDir); err == nil && info.IsDir() {
		log.Info().Str("dir", cfg.ScenarioDir).Msg("scenario preset directory found")
	} else {
		log.Warn().Str("dir", cfg.ScenarioDir).Msg("scenario preset directory not found; presets disabled")
	}

	// Set up Gin router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	store := handlers.NewResultStore(100)
	simulateHandler := handlers.NewSimulateHandler(cfg.ScenarioDir, store)
	scenarioHandler := handlers.NewScenarioHandler(cfg.ScenarioDir)
	actionHandler := handlers.NewActionHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.GET("/simulate/:id/series", simulateHandler.GetSeries)
		api.POST("/simulate/compare", simulateHandler.CompareSimulations)

		api.GET("/scenarios", scenarioHandler.ListScenarios)
		api.GET("/actions", actionHandler.ListActions)
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
