package handlers

import (
	"errors"
	"net/http"
	"time"

	"bitbucket.org/gradways/crm_backend/config"
	"bitbucket.org/gradways/crm_backend/models"
	"bitbucket.org/gradways/crm_backend/models/analytics"
	"bitbucket.org/gradways/crm_backend/utils"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the role-shaped dashboard aggregate. Results are
// cached per (filter, range, actor, role) key; concurrent misses for the same
// key are collapsed behind a redis lock so only one computes.
func DashboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		logger := config.GetLogger()

		actorId, ok := utils.GetUserIdFromContext(ctx)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		role, _ := utils.GetRoleFromContext(ctx)

		filter := c.DefaultQuery("filter", analytics.FilterToday)
		beforeDate := c.Query("beforeDate")
		afterDate := c.Query("afterDate")

		key := analytics.CacheKey("dashboard", filter, beforeDate, afterDate, actorId, role)
		var cached analytics.DashboardStats
		if hit, err := analytics.CacheGet(key, &cached); err == nil && hit {
			c.JSON(http.StatusOK, gin.H{"data": &cached})
			return
		}

		started := time.Now()
		stats, err := analytics.WithComputeLock(ctx, key, func() (*analytics.DashboardStats, error) {
			// Another request may have filled the cache while we waited.
			var filled analytics.DashboardStats
			if hit, err := analytics.CacheGet(key, &filled); err == nil && hit {
				return &filled, nil
			}
			return analytics.GetDashboardStats(ctx, analytics.NewStore(config.GetDB()), analytics.DashboardRequest{
				Filter:     filter,
				BeforeDate: beforeDate,
				AfterDate:  afterDate,
				ActorId:    actorId,
				Role:       models.Role(role),
			})
		})
		if err != nil {
			config.LogError(logger, "dashboardHandler.go", "DashboardHandler", "GetDashboardStats", filter, err)
			respondAnalyticsError(c, err)
			return
		}
		analytics.LogSlowAggregate(ctx, "dashboard", started, map[string]any{
			"filter": filter,
			"role":   role,
		})

		if err := analytics.CacheSet(key, stats); err != nil {
			config.LogError(logger, "dashboardHandler.go", "DashboardHandler", "CacheSet", key, err)
		}
		c.JSON(http.StatusOK, gin.H{"data": stats})
	}
}

// respondAnalyticsError maps the analytics sentinels onto HTTP statuses.
func respondAnalyticsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, analytics.ErrInvalidFilter), errors.Is(err, analytics.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, analytics.ErrUnauthorizedScope):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
