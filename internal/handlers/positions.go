package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atharvakonge/portfolio-tracker/internal/models"
)

// positionMetricsRequest - a stored position plus the market data for it
type positionMetricsRequest struct {
	Position       models.Position       `json:"position"`
	Market         models.MarketSnapshot `json:"market"`
	PortfolioValue float64               `json:"portfolio_value" validate:"gte=0,finite"`
}

// CreatePosition handles POST /api/positions?user_id=
func (h *Handler) CreatePosition(c *gin.Context) {
	owner, ok := userID(c)
	if !ok {
		return
	}

	var req models.PositionCreate
	if !bindJSON(c, &req) {
		return
	}

	position, err := req.Position(owner)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, position)
}

// PositionMetrics handles POST /api/positions/metrics
func (h *Handler) PositionMetrics(c *gin.Context) {
	var req positionMetricsRequest
	if !bindJSON(c, &req) {
		return
	}

	withMetrics, err := models.NewPositionWithMetrics(req.Position, req.Market, req.PortfolioValue)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, withMetrics)
}
