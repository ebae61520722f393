package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/campus/internal/locale"
	"github.com/joshua-takyi/campus/internal/models"
	"github.com/joshua-takyi/campus/internal/services"
)

// Login answers 401 for every credential mismatch, including missing fields.
func Login(as *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.Credentials
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c)
			return
		}

		profile, err := as.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err, locale.InvalidUserData)
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

func Register(as *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.Credentials
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c)
			return
		}

		profile, err := as.Register(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err, locale.InvalidUserData)
			return
		}

		c.JSON(http.StatusCreated, profile)
	}
}
