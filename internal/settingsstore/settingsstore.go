package settingsstore

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/pawdopt/internal/config"
	"github.com/mrlokans/pawdopt/internal/database/settings"
	"github.com/mrlokans/pawdopt/internal/entities"
)

// Priority: database > environment > default
type SettingsStore struct {
	repo *settings.Repository
	cfg  *config.Config
}

func New(repo *settings.Repository, cfg *config.Config) *SettingsStore {
	return &SettingsStore{repo: repo, cfg: cfg}
}

// CacheTTL returns the freshness window for synced animals.
func (s *SettingsStore) CacheTTL() time.Duration {
	if hours, ok := s.intSetting(entities.SettingKeyCacheTTLHours); ok && hours > 0 {
		return time.Duration(hours) * time.Hour
	}

	if env := os.Getenv("CACHE_TTL_HOURS"); env != "" {
		if hours, err := strconv.Atoi(env); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}

	return time.Duration(s.cfg.Sync.DefaultTTLHours) * time.Hour
}

func (s *SettingsStore) SetCacheTTLHours(hours int) error {
	if hours <= 0 {
		return fmt.Errorf("cache TTL must be positive, got %d", hours)
	}
	return s.repo.SetSetting(entities.SettingKeyCacheTTLHours, strconv.Itoa(hours))
}

// CacheTTLSource reports where the effective TTL value comes from.
func (s *SettingsStore) CacheTTLSource() string {
	if hours, ok := s.intSetting(entities.SettingKeyCacheTTLHours); ok && hours > 0 {
		return "database"
	}
	if env := os.Getenv("CACHE_TTL_HOURS"); env != "" {
		if hours, err := strconv.Atoi(env); err == nil && hours > 0 {
			return "environment"
		}
	}
	return "default"
}

// NotificationEnabled reports whether the daily notification should fire.
func (s *SettingsStore) NotificationEnabled() bool {
	setting, err := s.repo.GetSetting(entities.SettingKeyNotificationEnabled)
	if err == nil && setting.Value != "" {
		return setting.Value == "true"
	}
	return s.cfg.Notifications.Enabled
}

func (s *SettingsStore) SetNotificationEnabled(enabled bool) error {
	return s.repo.SetSetting(entities.SettingKeyNotificationEnabled, strconv.FormatBool(enabled))
}

// NotificationTime returns the configured daily notification time of day.
func (s *SettingsStore) NotificationTime() (hour, minute int) {
	hour = s.cfg.Notifications.Hour
	minute = s.cfg.Notifications.Minute

	if h, ok := s.intSetting(entities.SettingKeyNotificationHour); ok && h >= 0 && h <= 23 {
		hour = h
	}
	if m, ok := s.intSetting(entities.SettingKeyNotificationMinute); ok && m >= 0 && m <= 59 {
		minute = m
	}
	return hour, minute
}

func (s *SettingsStore) SetNotificationTime(hour, minute int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("notification hour out of range: %d", hour)
	}
	if minute < 0 || minute > 59 {
		return fmt.Errorf("notification minute out of range: %d", minute)
	}
	if err := s.repo.SetSetting(entities.SettingKeyNotificationHour, strconv.Itoa(hour)); err != nil {
		return err
	}
	return s.repo.SetSetting(entities.SettingKeyNotificationMinute, strconv.Itoa(minute))
}

// Theme returns the stored UI theme, empty when unset.
func (s *SettingsStore) Theme() string {
	setting, err := s.repo.GetSetting(entities.SettingKeyTheme)
	if err != nil {
		return ""
	}
	return setting.Value
}

func (s *SettingsStore) SetTheme(theme string) error {
	return s.repo.SetSetting(entities.SettingKeyTheme, theme)
}

// PageSize returns the listing page size.
func (s *SettingsStore) PageSize() int {
	if size, ok := s.intSetting(entities.SettingKeyPageSize); ok && size > 0 {
		return size
	}
	return s.cfg.UI.PageSize
}

func (s *SettingsStore) SetPageSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("page size must be positive, got %d", size)
	}
	return s.repo.SetSetting(entities.SettingKeyPageSize, strconv.Itoa(size))
}

// ClearCacheTTL removes the stored TTL so environment and default apply again.
func (s *SettingsStore) ClearCacheTTL() error {
	err := s.repo.DeleteSetting(entities.SettingKeyCacheTTLHours)
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	return err
}

func (s *SettingsStore) intSetting(key string) (int, bool) {
	setting, err := s.repo.GetSetting(key)
	if err != nil || setting.Value == "" {
		return 0, false
	}
	value, err := strconv.Atoi(setting.Value)
	if err != nil {
		return 0, false
	}
	return value, true
}
