package models

import "time"

// AppSetting is a small key/value table for dashboard preferences,
// currently only the custom background URL.
type AppSetting struct {
	Key       string    `json:"key" gorm:"primaryKey;type:varchar(64)"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (AppSetting) TableName() string {
	return "app_settings"
}
