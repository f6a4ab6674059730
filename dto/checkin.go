package dto

import "time"

// CheckInResponse is the wire shape of one stored check-in
type CheckInResponse struct {
	ID         uint      `json:"id"`
	Mood       int       `json:"mood"`
	Notes      *string   `json:"notes"`
	RecordedAt time.Time `json:"recorded_at"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"created_at"`
}

// DayBucket is one chart point: all check-ins of a local calendar day
// collapsed to an average, plus the trailing rolling average.
type DayBucket struct {
	Date           string  `json:"date"` // YYYY-MM-DD in the viewer's zone
	AverageMood    float64 `json:"mood"`
	RollingAverage float64 `json:"rolling"`
	Count          int     `json:"count"`
}

// SearchResult is a fuzzy notes match with its score
type SearchResult struct {
	CheckIn CheckInResponse `json:"checkIn"`
	Score   int             `json:"score"`
}
