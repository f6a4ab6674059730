package controllers

import (
	"strconv"

	"github.com/dhu2022-dev/mental-health-checkin/response"
	"github.com/dhu2022-dev/mental-health-checkin/services"
	"github.com/dhu2022-dev/mental-health-checkin/utils"

	"github.com/gin-gonic/gin"
)

// StatsController serves the dashboard chart data
type StatsController struct {
	service *services.StatsService
}

// NewStatsController creates a StatsController
func NewStatsController(service *services.StatsService) *StatsController {
	return &StatsController{service: service}
}

// Daily returns day-bucketed mood averages for the chart.
// @Summary      Daily mood averages with rolling mean
// @Param        days  query  int     false  "trailing window in days, 0 = all time"
// @Param        tz    query  string  false  "IANA zone for the day boundary"
// @Produce      json
// @Router       /stats/daily [get]
func (ctl *StatsController) Daily(c *gin.Context) {
	days := 30
	if daysStr := c.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 0 {
			response.BadRequest(c, "Invalid days parameter: "+daysStr)
			return
		}
		days = parsed
	}

	buckets, err := ctl.service.GetDaily(c.Request.Context(), days, c.Query("tz"))
	if err != nil {
		utils.LogError("[stats] aggregation failed: %v", err)
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, buckets, len(buckets))
}
