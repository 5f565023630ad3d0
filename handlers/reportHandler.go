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

// ReportHandler serves the access-scoped aggregate: admins may narrow to a
// manager's team or a single counsellor, managers to their own team members,
// counsellors only to themselves.
func ReportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		logger := config.GetLogger()

		actorId, ok := utils.GetUserIdFromContext(ctx)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		role, _ := utils.GetRoleFromContext(ctx)

		managerId, _ := strconv.Atoi(c.Query("managerId"))
		counsellorId, _ := strconv.Atoi(c.Query("counsellorId"))

		req := analytics.ReportRequest{
			ActorId:      actorId,
			Role:         models.Role(role),
			Filter:       c.DefaultQuery("filter", analytics.FilterMonthly),
			BeforeDate:   c.Query("beforeDate"),
			AfterDate:    c.Query("afterDate"),
			ManagerId:    managerId,
			CounsellorId: counsellorId,
		}

		started := time.Now()
		report, err := analytics.GetReport(ctx, analytics.NewStore(config.GetDB()), req)
		if err != nil {
			config.LogError(logger, "reportHandler.go", "ReportHandler", "GetReport", req.Filter, err)
			respondAnalyticsError(c, err)
			return
		}
		analytics.LogSlowAggregate(ctx, "report", started, map[string]any{
			"filter":        req.Filter,
			"manager_id":    managerId,
			"counsellor_id": counsellorId,
		})
		c.JSON(http.StatusOK, gin.H{"data": report})
	}
}
