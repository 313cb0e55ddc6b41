package main

import (
	"github.com/gin-gonic/gin"

	"github.com/atharvakonge/portfolio-tracker/internal/config"
	"github.com/atharvakonge/portfolio-tracker/internal/handlers"
	"github.com/atharvakonge/portfolio-tracker/internal/logger"
	"github.com/atharvakonge/portfolio-tracker/internal/market"
)

func main() {
	// Load .env and environment
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info", Pretty: true})
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(log)

	// Set Gin mode based on environment
	if cfg.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	hub := market.NewQuoteHub(cfg.QuoteBuffer, log)
	router := handlers.NewRouter(handlers.NewHandler(hub, cfg.BcryptCost, log))

	log.Info().Str("port", cfg.Port).Msg("Server starting")

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
