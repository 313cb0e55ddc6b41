package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atharvakonge/portfolio-tracker/internal/models"
)

// CreateAlert handles POST /api/alerts?user_id=
func (h *Handler) CreateAlert(c *gin.Context) {
	owner, ok := userID(c)
	if !ok {
		return
	}

	var req models.AlertCreate
	if !bindJSON(c, &req) {
		return
	}

	alert, err := req.Alert(owner)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, alert)
}

// CreateGoal handles POST /api/goals?user_id=
func (h *Handler) CreateGoal(c *gin.Context) {
	owner, ok := userID(c)
	if !ok {
		return
	}

	var req models.GoalCreate
	if !bindJSON(c, &req) {
		return
	}

	goal, err := req.Goal(owner)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}
