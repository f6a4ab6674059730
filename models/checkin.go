package models

import "time"

type CheckIn struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Mood       int       `json:"mood" gorm:"not null;check:mood >= 1 AND mood <= 10"`
	Notes      *string   `json:"notes"`
	RecordedAt time.Time `json:"recordedAt" gorm:"index;not null"` // instant the entry describes, not the insert time
	Source     string    `json:"source" gorm:"type:varchar(32);default:'shortcut'"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (CheckIn) TableName() string {
	return "check_ins"
}
