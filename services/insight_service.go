package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dhu2022-dev/mental-health-checkin/constants"
	"github.com/dhu2022-dev/mental-health-checkin/dto"
	"github.com/dhu2022-dev/mental-health-checkin/errors"
	"github.com/dhu2022-dev/mental-health-checkin/models"
	"github.com/dhu2022-dev/mental-health-checkin/services/logger"

	json "github.com/goccy/go-json"
	"gorm.io/gorm"
)

const openAIURL = "https://api.openai.com/v1/chat/completions"

const insightSystemPrompt = `You are a supportive assistant that analyzes brief daily journal entries (mood 1-10 and optional notes).
Return valid JSON only, no markdown or explanation, with this exact shape:
{
  "summary": "2-3 sentence overall summary of this period",
  "positive_factors": ["factor 1", "factor 2", "..."],
  "negative_factors": ["factor 1", "factor 2", "..."]
}
List 3-5 positive and 3-5 negative factors or themes. Be concise and specific to the entries.`

// GPTResponse is the part of the chat completions payload we read
type GPTResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// insightResult is the JSON object the model is asked to return
type insightResult struct {
	Summary         string   `json:"summary"`
	PositiveFactors []string `json:"positive_factors"`
	NegativeFactors []string `json:"negative_factors"`
}

// InsightServiceOptions contains the dependencies of InsightService
type InsightServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
	APIKey string
	// BaseURL overrides the OpenAI endpoint, for tests
	BaseURL string
	Client  *http.Client
}

// InsightService generates and stores AI period summaries
type InsightService struct {
	db      *gorm.DB
	logger  logger.Logger
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewInsightService creates an InsightService
func NewInsightService(opts InsightServiceOptions) *InsightService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = openAIURL
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &InsightService{
		db:      opts.DB,
		logger:  l,
		apiKey:  opts.APIKey,
		baseURL: baseURL,
		client:  client,
	}
}

// ResolvePeriod turns the request into a concrete [start, end] date pair.
// Explicit dates win; otherwise the named period is anchored at now:
// monthly = last 30 days, quarterly = last 3 months, yearly = last year.
func ResolvePeriod(req dto.GenerateInsightRequest, now time.Time) (periodType, startDate, endDate string) {
	periodType = req.PeriodType
	if periodType == "" {
		periodType = constants.PeriodMonthly
	}

	if req.StartDate != "" && req.EndDate != "" {
		return periodType, req.StartDate, req.EndDate
	}

	end := now
	var start time.Time
	switch periodType {
	case constants.PeriodQuarterly:
		start = now.AddDate(0, -3, 0)
	case constants.PeriodYearly:
		start = now.AddDate(-1, 0, 0)
	default:
		start = now.AddDate(0, 0, -30)
	}
	return periodType, start.UTC().Format("2006-01-02"), end.UTC().Format("2006-01-02")
}

// Generate summarizes the period's check-ins and persists the insight.
// Fails as a whole on any step; no partial insight is ever stored.
func (s *InsightService) Generate(ctx context.Context, req dto.GenerateInsightRequest) (*models.Insight, error) {
	periodType, startDate, endDate := ResolvePeriod(req, time.Now())

	from, err := time.Parse(time.RFC3339, startDate+"T00:00:00Z")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidPeriod, "Invalid start date: "+startDate, err)
	}
	to, err := time.Parse(time.RFC3339, endDate+"T23:59:59Z")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidPeriod, "Invalid end date: "+endDate, err)
	}

	var checkIns []models.CheckIn
	if err := s.db.WithContext(ctx).
		Where("recorded_at >= ? AND recorded_at <= ?", from, to).
		Order("recorded_at asc").
		Find(&checkIns).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to fetch check-ins", err)
	}
	if len(checkIns) == 0 {
		return nil, errors.NewAppError(errors.ErrCodeEmptyPeriod, "No check-ins in this period", nil)
	}

	result, err := s.analyzeCheckIns(ctx, checkIns)
	if err != nil {
		return nil, err
	}

	insight := models.Insight{
		PeriodType:      periodType,
		PeriodStart:     startDate,
		PeriodEnd:       endDate,
		Summary:         result.Summary,
		PositiveFactors: result.PositiveFactors,
		NegativeFactors: result.NegativeFactors,
	}
	if err := s.db.WithContext(ctx).Create(&insight).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to save insight", err)
	}

	return &insight, nil
}

// List returns the latest insights, newest first. limit is clamped to 50.
func (s *InsightService) List(ctx context.Context, limit int) ([]models.Insight, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}
	var insights []models.Insight
	if err := s.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&insights).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to fetch insights", err)
	}
	return insights, nil
}

// analyzeCheckIns sends the period's entries to the chat completions API in
// JSON mode and parses the returned object. The factor lists come back
// verbatim; nothing is rewritten server-side.
func (s *InsightService) analyzeCheckIns(ctx context.Context, checkIns []models.CheckIn) (*insightResult, error) {
	if s.apiKey == "" {
		return nil, errors.NewAppError(errors.ErrCodeLLMFailed, "OPENAI_API_KEY not set", nil)
	}

	var lines []string
	for _, c := range checkIns {
		line := fmt.Sprintf("[%s] Mood: %d", c.RecordedAt.UTC().Format(time.RFC3339), c.Mood)
		if c.Notes != nil {
			line += " - " + *c.Notes
		}
		lines = append(lines, line)
	}
	blob := strings.Join(lines, "\n")

	requestBody, _ := json.Marshal(map[string]interface{}{
		"model": "gpt-4o-mini",
		"messages": []map[string]string{
			{"role": "system", "content": insightSystemPrompt},
			{"role": "user", "content": "Analyze these daily check-ins and return the JSON object only:\n\n" + blob},
		},
		"response_format": map[string]string{"type": "json_object"},
		"temperature":     0.3,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeLLMFailed, "Failed to build LLM request", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeLLMFailed, "LLM request failed", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		s.logger.Error("OpenAI API error: %d %s", resp.StatusCode, string(body))
		return nil, errors.NewAppError(errors.ErrCodeLLMFailed,
			fmt.Sprintf("LLM returned status %d", resp.StatusCode), nil)
	}

	var gptResp GPTResponse
	if err := json.Unmarshal(body, &gptResp); err != nil || len(gptResp.Choices) == 0 {
		return nil, errors.NewAppError(errors.ErrCodeLLMFailed, "LLM returned an invalid response", err)
	}

	content := strings.TrimSpace(gptResp.Choices[0].Message.Content)
	var result insightResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		s.logger.Error("LLM returned unparseable JSON: %s", content)
		return nil, errors.NewAppError(errors.ErrCodeLLMFailed, "LLM returned malformed JSON", err)
	}
	if result.Summary == "" || result.PositiveFactors == nil || result.NegativeFactors == nil {
		return nil, errors.NewAppError(errors.ErrCodeLLMFailed, "LLM response missing required fields", nil)
	}

	return &result, nil
}

// ToInsightResponse maps a model to its wire shape
func ToInsightResponse(i models.Insight) dto.InsightResponse {
	return dto.InsightResponse{
		ID:              i.ID,
		PeriodType:      i.PeriodType,
		PeriodStart:     i.PeriodStart,
		PeriodEnd:       i.PeriodEnd,
		Summary:         i.Summary,
		PositiveFactors: []string(i.PositiveFactors),
		NegativeFactors: []string(i.NegativeFactors),
		CreatedAt:       i.CreatedAt,
	}
}
