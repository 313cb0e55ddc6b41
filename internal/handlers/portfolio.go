package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atharvakonge/portfolio-tracker/internal/models"
)

// PortfolioSummary handles POST /api/portfolio/summary
func (h *Handler) PortfolioSummary(c *gin.Context) {
	var req models.SummaryInput
	if !bindJSON(c, &req) {
		return
	}

	summary, err := models.NewPortfolioSummary(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Correlations handles POST /api/analytics/correlations
func (h *Handler) Correlations(c *gin.Context) {
	var items []models.CorrelationItem
	if !bindJSON(c, &items) {
		return
	}
	if items == nil {
		items = []models.CorrelationItem{}
	}

	c.JSON(http.StatusOK, gin.H{
		"correlations": items,
		"count":        len(items),
	})
}

// CreateRecommendation handles POST /api/recommendations
func (h *Handler) CreateRecommendation(c *gin.Context) {
	var req models.Recommendation
	if !decodeJSON(c, &req) {
		return
	}

	rec, err := models.NewRecommendation(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}
