package handlers

import (
	"net/http"

	"bitbucket.org/gradways/crm_backend/config"
	"bitbucket.org/gradways/crm_backend/models"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func LoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := config.GetLogger()

		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
			return
		}

		token, err := models.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			config.LogError(logger, "authHandler.go", "LoginHandler", "Login", req.Username, err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": gin.H{"token": token}})
	}
}
