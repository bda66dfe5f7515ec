package entities

import (
	"time"
)

type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys
const (
	// UI preferences
	SettingKeyTheme    = "theme"
	SettingKeyPageSize = "page_size"

	// Sync settings
	SettingKeyCacheTTLHours = "cache_ttl_hours"

	// Daily notification settings
	SettingKeyNotificationEnabled = "notification_enabled"
	SettingKeyNotificationHour    = "notification_hour"
	SettingKeyNotificationMinute  = "notification_minute"
)
