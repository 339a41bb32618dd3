package models

import "time"

// SettingModel is the persistence model for application settings.
// Settings are a flat key/value store; numbering prefixes, format
// templates and counters all live here.
type SettingModel struct {
	Key       string    `gorm:"type:varchar(100);primary_key"`
	Value     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SettingModel) TableName() string {
	return "settings"
}
