package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"bitbucket.org/gradways/crm_backend/config"
	"bitbucket.org/gradways/crm_backend/models"
	"bitbucket.org/gradways/crm_backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

func CreateClientHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := config.GetLogger()

		var input models.NewClient
		if err := c.ShouldBindJSON(&input); err != nil {
			var validationErrs validator.ValidationErrors
			if errors.As(err, &validationErrs) {
				c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		client, err := models.CreateClient(c.Request.Context(), &input)
		if err != nil {
			config.LogError(logger, "clientHandler.go", "CreateClientHandler", "CreateClient", input.Name, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"data": client})
	}
}

func GetClientHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client id"})
			return
		}

		client, err := models.GetClient(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		payments, err := models.GetStagedPaymentsByClient(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		documents, err := models.GetClientDocuments(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": gin.H{
			"client":    client,
			"payments":  payments,
			"documents": documents,
		}})
	}
}

func ArchiveClientHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := config.GetLogger()

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client id"})
			return
		}
		if err := models.ArchiveClient(c.Request.Context(), id); err != nil {
			config.LogError(logger, "clientHandler.go", "ArchiveClientHandler", "ArchiveClient", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": id, "archived": true}})
	}
}

func CreateStagedPaymentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := config.GetLogger()

		var input models.NewStagedPayment
		if err := c.ShouldBindJSON(&input); err != nil {
			var validationErrs validator.ValidationErrors
			if errors.As(err, &validationErrs) {
				c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		payment, err := models.CreateStagedPayment(c.Request.Context(), &input)
		if err != nil {
			config.LogError(logger, "clientHandler.go", "CreateStagedPaymentHandler", "CreateStagedPayment", input.ClientId, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"data": payment})
	}
}

// SetTargetHandler sets a counsellor's monthly enrollment target. Counsellors
// cannot set targets, not even their own.
func SetTargetHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := config.GetLogger()

		role, _ := utils.GetRoleFromContext(c.Request.Context())
		if models.Role(role) == models.RoleCounsellor {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		var input models.NewCounsellorTarget
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		if models.Role(role) == models.RoleManager {
			if actorId, ok := utils.GetUserIdFromContext(c.Request.Context()); ok {
				input.ManagerId = &actorId
			}
		}

		target, err := models.SetCounsellorTarget(c.Request.Context(), &input)
		if err != nil {
			config.LogError(logger, "clientHandler.go", "SetTargetHandler", "SetCounsellorTarget", input.CounsellorId, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": target})
	}
}
