package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog"

	"github.com/atharvakonge/portfolio-tracker/internal/market"
)

// Handler serves the record construction endpoints. It keeps no records:
// every request builds and returns one.
type Handler struct {
	hub        *market.QuoteHub
	bcryptCost int
	log        zerolog.Logger
}

// NewHandler creates the API handlers
func NewHandler(hub *market.QuoteHub, bcryptCost int, log zerolog.Logger) *Handler {
	return &Handler{
		hub:        hub,
		bcryptCost: bcryptCost,
		log:        log,
	}
}

// NewRouter builds the gin engine with every route registered
func NewRouter(h *Handler) *gin.Engine {
	binding.Validator = bindingValidator{}

	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(h.log))

	api := router.Group("/api")
	{
		api.POST("/users", h.CreateUser)

		api.POST("/positions", h.CreatePosition)
		api.POST("/positions/metrics", h.PositionMetrics)

		api.POST("/transactions", h.CreateTransaction)

		api.POST("/portfolio/summary", h.PortfolioSummary)
		api.POST("/analytics/correlations", h.Correlations)
		api.POST("/recommendations", h.CreateRecommendation)

		api.POST("/alerts", h.CreateAlert)
		api.POST("/goals", h.CreateGoal)

		api.POST("/market/quotes", h.PublishQuote)
	}

	// WebSocket endpoint
	router.GET("/ws/quotes", h.StreamQuotes)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	return router
}

// RequestLogger logs one line per request
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error().Strs("errors", c.Errors.Errors())
		case status >= http.StatusBadRequest:
			event = log.Warn()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
