package controllers

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dhu2022-dev/mental-health-checkin/constants"
	"github.com/dhu2022-dev/mental-health-checkin/dto"
	"github.com/dhu2022-dev/mental-health-checkin/errors"
	"github.com/dhu2022-dev/mental-health-checkin/response"
	"github.com/dhu2022-dev/mental-health-checkin/services"
	"github.com/dhu2022-dev/mental-health-checkin/utils"
	"github.com/dhu2022-dev/mental-health-checkin/validator"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
)

// CheckInController handles check-in ingestion and queries
type CheckInController struct {
	service  *services.CheckInService
	timezone string
}

// NewCheckInController creates a CheckInController. timezone is the IANA
// zone naive date text is interpreted in.
func NewCheckInController(service *services.CheckInService, timezone string) *CheckInController {
	return &CheckInController{
		service:  service,
		timezone: timezone,
	}
}

// Create ingests one check-in.
// @Summary      Submit a mood check-in
// @Accept       json,plain
// @Produce      json
// @Router       /checkin [post]
func (ctl *CheckInController) Create(c *gin.Context) {
	contentType := c.ContentType()
	now := time.Now()
	loc := services.LoadViewerLocation(ctl.timezone)

	// Request info lands in the server log; the client is a phone
	// automation, so this is the only place ingest problems show up.
	utils.LogInfo("[checkin] incoming request method=%s contentType=%s", c.Request.Method, contentType)

	var parsed *services.ParsedCheckIn

	switch {
	case strings.Contains(contentType, "application/json"):
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.BadRequest(c, "Unable to read request body")
			return
		}
		var fields map[string]interface{}
		if err := json.Unmarshal(body, &fields); err != nil {
			response.BadRequestWithDebug(c, "Invalid JSON body", gin.H{
				"contentType": contentType,
				"bodyLength":  len(body),
			})
			return
		}
		utils.LogInfo("[checkin] JSON body %s", string(body))

		parsed, err = services.NormalizeCheckIn(fields, now, loc)
		if err != nil {
			appErr := errors.GetAppError(err)
			response.BadRequestWithDebug(c, appErr.Message, jsonDebug(fields, contentType))
			return
		}

	case strings.Contains(contentType, "text/plain"):
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.BadRequest(c, "Unable to read request body")
			return
		}
		raw := string(body)
		utils.LogInfo("[checkin] text/plain body %s", raw)

		parsed, err = services.ParseSemicolonLine(raw, now, loc)
		if err != nil {
			appErr := errors.GetAppError(err)
			response.BadRequestWithDebug(c, appErr.Message, rawLineDebug(raw, contentType))
			return
		}

	default:
		response.BadRequest(c, "Content-Type must be application/json or text/plain")
		return
	}

	checkIn, err := ctl.service.Create(c.Request.Context(), parsed, constants.SourceShortcut)
	if err != nil {
		utils.LogError("[checkin] insert failed: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, services.ToCheckInResponse(*checkIn))
}

// List returns check-ins newest first, optionally bounded by from/to.
// @Summary      List check-ins
// @Param        from  query  string  false  "lower bound (RFC3339 or YYYY-MM-DD)"
// @Param        to    query  string  false  "upper bound (RFC3339 or YYYY-MM-DD)"
// @Produce      json
// @Router       /checkins [get]
func (ctl *CheckInController) List(c *gin.Context) {
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
		utils.LogError("[checkins] query failed: %v", err)
		response.ServerError(c)
		return
	}

	responses := make([]dto.CheckInResponse, 0, len(checkIns))
	for _, checkIn := range checkIns {
		responses = append(responses, services.ToCheckInResponse(checkIn))
	}
	response.SuccessWithTotal(c, responses, len(responses))
}

// Search fuzzy-matches notes.
// @Summary      Search check-in notes
// @Param        q      query  string  true   "search text"
// @Param        limit  query  int     false  "max results"
// @Produce      json
// @Router       /checkins/search [get]
func (ctl *CheckInController) Search(c *gin.Context) {
	q := c.Query("q")
	if err := validator.ValidateSearchQuery(q); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	results, err := ctl.service.Search(c.Request.Context(), q, limit)
	if err != nil {
		utils.LogError("[search] query failed: %v", err)
		response.ServerError(c)
		return
	}
	response.SuccessWithTotal(c, results, len(results))
}

// parseBound parses a query bound. Date-only values snap to the start or
// end of that day. A malformed bound writes the error response and returns
// ok=false.
func parseBound(c *gin.Context, value string, endOfDay bool) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, true
	}
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		if endOfDay {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return &t, true
	}
	response.BadRequest(c, "Invalid date bound: "+strconv.Quote(value))
	return nil, false
}

// rawLineDebug echoes what the parser saw so a misconfigured shortcut can
// be debugged from the phone's response alone.
func rawLineDebug(raw, contentType string) gin.H {
	parts := strings.Split(raw, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return gin.H{
		"contentType": contentType,
		"rawString":   raw,
		"rawLength":   len(raw),
		"parts":       parts,
	}
}

func jsonDebug(fields map[string]interface{}, contentType string) gin.H {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	debug := gin.H{
		"contentType": contentType,
		"keys":        keys,
	}
	if raw, ok := fields["raw"]; ok {
		rawStr := services.ExtractRawString(raw)
		debug["rawType"] = fmt.Sprintf("%T", raw)
		debug["rawString"] = rawStr
		debug["rawLength"] = len(rawStr)
		parts := strings.Split(rawStr, ";")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		debug["parts"] = parts
		if obj, ok := raw.(map[string]interface{}); ok {
			rawJSON, _ := json.Marshal(obj)
			debug["rawJson"] = string(rawJSON)
		}
	}
	return debug
}
