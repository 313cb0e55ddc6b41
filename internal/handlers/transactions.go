package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atharvakonge/portfolio-tracker/internal/models"
)

// CreateTransaction handles POST /api/transactions?user_id=
func (h *Handler) CreateTransaction(c *gin.Context) {
	owner, ok := userID(c)
	if !ok {
		return
	}

	var req models.TransactionCreate
	if !bindJSON(c, &req) {
		return
	}

	tx, err := req.Transaction(owner)
	if err != nil {
		respondError(c, err)
		return
	}

	h.log.Info().
		Str("user_id", owner).
		Str("symbol", tx.Symbol).
		Str("type", string(tx.Type)).
		Float64("total", tx.Total).
		Msg("transaction recorded")

	c.JSON(http.StatusCreated, tx)
}
