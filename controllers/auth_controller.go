package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding-backend/services"
	"wedding-backend/utils"
)

type AuthController struct {
	AuthSvc  Authenticator
	StatsSvc StatsProvider
}

func NewAuthController(auth Authenticator, stats StatsProvider) *AuthController {
	return &AuthController{AuthSvc: auth, StatsSvc: stats}
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload services.LoginInput
	if !bindJSON(c, &payload) {
		return
	}

	token, admin, err := ctrl.AuthSvc.Login(c.Request.Context(), payload.Email, payload.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		utils.JSONMessage(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		log.Printf("❌ login error: %v", err)
		utils.JSONDatabaseError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{"id": admin.ID, "email": admin.Email},
	})
}

func (ctrl *AuthController) Stats(c *gin.Context) {
	stats, err := ctrl.StatsSvc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, "stats", err, "")
		return
	}
	c.JSON(http.StatusOK, stats)
}
