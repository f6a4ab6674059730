package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dhu2022-dev/mental-health-checkin/errors"
	"github.com/dhu2022-dev/mental-health-checkin/response"
	"github.com/dhu2022-dev/mental-health-checkin/services"
	"github.com/dhu2022-dev/mental-health-checkin/utils"
	"github.com/dhu2022-dev/mental-health-checkin/validator"

	"github.com/gin-gonic/gin"
)

// ExportController serves check-in downloads
type ExportController struct {
	service  *services.CheckInService
	timezone string
}

// NewExportController creates an ExportController
func NewExportController(service *services.CheckInService, timezone string) *ExportController {
	return &ExportController{
		service:  service,
		timezone: timezone,
	}
}

// Export downloads check-ins as CSV or as re-ingestable semicolon lines.
// @Summary      Export check-ins
// @Param        format  query  string  false  "csv (default) or lines"
// @Param        from    query  string  false  "lower bound"
// @Param        to      query  string  false  "upper bound"
// @Produce      plain
// @Router       /export [get]
func (ctl *ExportController) Export(c *gin.Context) {
	from, ok := parseBound(c, c.Query("from"), false)
	if !ok {
		return
	}
	to, ok := parseBound(c, c.Query("to"), true)
	if !ok {
		return
	}
	if err := validator.ValidateDateRange(from, to); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	checkIns, err := ctl.service.List(c.Request.Context(), from, to)
	if err != nil {
		utils.LogError("[export] query failed: %v", err)
		response.ServerError(c)
		return
	}
	// List is newest first; exports read chronologically
	for i, j := 0, len(checkIns)-1; i < j; i, j = i+1, j-1 {
		checkIns[i], checkIns[j] = checkIns[j], checkIns[i]
	}

	filename := "check-ins-" + time.Now().Format("2006-01-02")

	switch c.DefaultQuery("format", "csv") {
	case "lines":
		loc := services.LoadViewerLocation(ctl.timezone)
		lines := make([]string, 0, len(checkIns))
		for _, checkIn := range checkIns {
			lines = append(lines, services.FormatShortcutLine(checkIn, loc))
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.txt", filename))
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(strings.Join(lines, "\n")))

	case "csv":
		var buf bytes.Buffer
		if err := services.WriteCheckInsCSV(&buf, checkIns); err != nil {
			utils.LogError("[export] csv write failed: %v", err)
			response.ServerError(c)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", filename))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())

	default:
		response.BadRequest(c, "Invalid format: expected csv or lines")
	}
}
