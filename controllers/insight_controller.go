package controllers

import (
	"strconv"

	"github.com/dhu2022-dev/mental-health-checkin/dto"
	"github.com/dhu2022-dev/mental-health-checkin/errors"
	"github.com/dhu2022-dev/mental-health-checkin/response"
	"github.com/dhu2022-dev/mental-health-checkin/services"
	"github.com/dhu2022-dev/mental-health-checkin/utils"
	"github.com/dhu2022-dev/mental-health-checkin/validator"

	"github.com/gin-gonic/gin"
)

// InsightController handles AI period summaries
type InsightController struct {
	service *services.InsightService
}

// NewInsightController creates an InsightController
func NewInsightController(service *services.InsightService) *InsightController {
	return &InsightController{service: service}
}

// List returns stored insights newest first.
// @Summary      List insights
// @Param        limit  query  int  false  "max results (clamped to 50)"
// @Produce      json
// @Router       /insights [get]
func (ctl *InsightController) List(c *gin.Context) {
	limit := 10
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}

	insights, err := ctl.service.List(c.Request.Context(), limit)
	if err != nil {
		utils.LogError("[insights] query failed: %v", err)
		response.ServerError(c)
		return
	}

	responses := make([]dto.InsightResponse, 0, len(insights))
	for _, insight := range insights {
		responses = append(responses, services.ToInsightResponse(insight))
	}
	response.SuccessWithTotal(c, responses, len(responses))
}

// Generate summarizes a period with the LLM and stores the result.
// @Summary      Generate an insight for a period
// @Accept       json
// @Produce      json
// @Router       /insights [post]
func (ctl *InsightController) Generate(c *gin.Context) {
	var req dto.GenerateInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid JSON body")
		return
	}
	if err := validator.ValidatePeriodType(req.PeriodType); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	insight, err := ctl.service.Generate(c.Request.Context(), req)
	if err != nil {
		appErr := errors.GetAppError(err)
		switch {
		case appErr == nil:
			response.ServerError(c)
		case appErr.Code == errors.ErrCodeEmptyPeriod, appErr.Code == errors.ErrCodeInvalidPeriod:
			response.BadRequest(c, appErr.Message)
		case appErr.Code == errors.ErrCodeLLMFailed:
			utils.LogError("[insights] llm failed: %v", err)
			response.UpstreamError(c, appErr.Message)
		default:
			utils.LogError("[insights] generate failed: %v", err)
			response.ServerError(c)
		}
		return
	}

	response.Success(c, services.ToInsightResponse(*insight))
}
