package models

import (
	"time"

	"github.com/lib/pq"
)

type Insight struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	PeriodType      string         `json:"periodType" gorm:"type:varchar(16);not null"` // monthly, quarterly, yearly
	PeriodStart     string         `json:"periodStart" gorm:"type:varchar(10);not null"`
	PeriodEnd       string         `json:"periodEnd" gorm:"type:varchar(10);not null"`
	Summary         string         `json:"summary"`
	PositiveFactors pq.StringArray `json:"positiveFactors" gorm:"type:text[]"`
	NegativeFactors pq.StringArray `json:"negativeFactors" gorm:"type:text[]"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}

func (Insight) TableName() string {
	return "insights"
}
