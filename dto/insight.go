package dto

import "time"

// GenerateInsightRequest selects the period to summarize. Explicit dates win
// over PeriodType; with neither the last 30 days are used.
type GenerateInsightRequest struct {
	PeriodType string `json:"periodType" binding:"omitempty,oneof=monthly quarterly yearly"`
	StartDate  string `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate    string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

type InsightResponse struct {
	ID              uint      `json:"id"`
	PeriodType      string    `json:"period_type"`
	PeriodStart     string    `json:"period_start"`
	PeriodEnd       string    `json:"period_end"`
	Summary         string    `json:"summary"`
	PositiveFactors []string  `json:"positive_factors"`
	NegativeFactors []string  `json:"negative_factors"`
	CreatedAt       time.Time `json:"created_at"`
}
