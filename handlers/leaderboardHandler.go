package handlers

import (
	"net/http"
	"strconv"
	"time"

	"bitbucket.org/gradways/crm_backend/config"
	"bitbucket.org/gradways/crm_backend/models"
	"bitbucket.org/gradways/crm_backend/models/analytics"
	"bitbucket.org/gradways/crm_backend/utils"
	"github.com/gin-gonic/gin"
)

func monthYearParams(c *gin.Context) (int, int) {
	now := time.Now()
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month == 0 {
		month = int(now.Month())
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year == 0 {
		year = now.Year()
	}
	return month, year
}

// LeaderboardHandler ranks the full roster for one calendar month.
func LeaderboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		logger := config.GetLogger()

		actorId, ok := utils.GetUserIdFromContext(ctx)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		role, _ := utils.GetRoleFromContext(ctx)
		month, year := monthYearParams(c)

		key := analytics.CacheKey("leaderboard", strconv.Itoa(month), strconv.Itoa(year), "", actorId, role)
		var cached analytics.LeaderboardView
		if hit, err := analytics.CacheGet(key, &cached); err == nil && hit {
			c.JSON(http.StatusOK, gin.H{"data": &cached})
			return
		}

		view, err := analytics.GetLeaderboard(ctx, analytics.NewStore(config.GetDB()), month, year)
		if err != nil {
			config.LogError(logger, "leaderboardHandler.go", "LeaderboardHandler", "GetLeaderboard", month, err)
			respondAnalyticsError(c, err)
			return
		}
		if err := analytics.CacheSet(key, view); err != nil {
			config.LogError(logger, "leaderboardHandler.go", "LeaderboardHandler", "CacheSet", key, err)
		}
		c.JSON(http.StatusOK, gin.H{"data": view})
	}
}

// EnrollmentGoalHandler reports one counsellor's progress against their
// monthly target. Counsellors may only ask about themselves.
func EnrollmentGoalHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		logger := config.GetLogger()

		actorId, ok := utils.GetUserIdFromContext(ctx)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		role, _ := utils.GetRoleFromContext(ctx)

		counsellorId, _ := strconv.Atoi(c.Query("counsellorId"))
		if counsellorId == 0 {
			counsellorId = actorId
		}
		if models.Role(role) == models.RoleCounsellor && counsellorId != actorId {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		month, year := monthYearParams(c)

		goal, err := analytics.GetLeaderboardEnrollmentGoal(ctx, analytics.NewStore(config.GetDB()), counsellorId, month, year)
		if err != nil {
			config.LogError(logger, "leaderboardHandler.go", "EnrollmentGoalHandler", "GetLeaderboardEnrollmentGoal", counsellorId, err)
			respondAnalyticsError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": goal})
	}
}

// ExportLeaderboardHandler writes the month's leaderboard to an XLSX in GCS
// and returns the object's access URL.
func ExportLeaderboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		logger := config.GetLogger()

		if _, ok := utils.GetUserIdFromContext(ctx); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		role, _ := utils.GetRoleFromContext(ctx)
		if models.Role(role) == models.RoleCounsellor {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		month, year := monthYearParams(c)

		store := analytics.NewStore(config.GetDB())
		view, err := analytics.GetLeaderboard(ctx, store, month, year)
		if err != nil {
			config.LogError(logger, "leaderboardHandler.go", "ExportLeaderboardHandler", "GetLeaderboard", month, err)
			respondAnalyticsError(c, err)
			return
		}
		url, err := analytics.ExportLeaderboardExcel(ctx, view, month, year)
		if err != nil {
			config.LogError(logger, "leaderboardHandler.go", "ExportLeaderboardHandler", "ExportLeaderboardExcel", month, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export leaderboard"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": gin.H{"url": url}})
	}
}
