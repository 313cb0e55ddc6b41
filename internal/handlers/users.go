package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/atharvakonge/portfolio-tracker/internal/models"
)

// CreateUser handles POST /api/users
func (h *Handler) CreateUser(c *gin.Context) {
	var req models.UserCreate
	if !bindJSON(c, &req) {
		return
	}

	hash, err := models.HashPassword(req.Password, h.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		respondError(c, models.ValidationErrors{{Field: "password", Rule: "max", Param: "72 bytes"}})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := req.User(hash)
	if err != nil {
		respondError(c, err)
		return
	}

	h.log.Info().Str("user_id", user.ID).Msg("user registered")
	c.JSON(http.StatusCreated, user.Response())
}
