package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		AdoptAPet
		MockFeed
		Sync
		Notifications
		Tasks
		UI
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	AdoptAPet struct {
		BaseURL     string
		APIKey      string
		CityOrZip   string // Search origin, city name or ZIP code
		GeoRange    int    // Search radius in miles
		StartNumber int    // Pagination window start (1-based)
		EndNumber   int    // Pagination window end (inclusive)
	}
	MockFeed struct {
		URL string
	}
	Sync struct {
		FetchTimeout    time.Duration // Per-source HTTP fetch timeout
		DefaultTTLHours int           // Cache TTL when no setting is stored
	}
	Notifications struct {
		Enabled bool
		Hour    int // Default daily notification time, overridable via settings
		Minute  int
	}
	Tasks struct {
		Enabled           bool
		Workers           int
		MaxRetries        int
		RetryDelay        time.Duration
		TaskTimeout       time.Duration
		ReleaseAfter      time.Duration
		CleanupInterval   time.Duration
		RetentionDuration time.Duration
	}
	UI struct {
		PageSize int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8199)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Remote source defaults
	v.SetDefault("adoptapet_base_url", DefaultAdoptAPetBaseURL)
	v.SetDefault("adoptapet_api_key", "")
	v.SetDefault("adoptapet_city_or_zip", "10001") // NYC, dense result area
	v.SetDefault("adoptapet_geo_range", 50)
	v.SetDefault("adoptapet_start_number", 1)
	v.SetDefault("adoptapet_end_number", 50)
	v.SetDefault("mock_feed_url", DefaultMockFeedURL)

	// Sync defaults
	v.SetDefault("sync_fetch_timeout", "30s")
	v.SetDefault("sync_default_ttl_hours", 24)

	// Daily notification defaults
	v.SetDefault("notifications_enabled", true)
	v.SetDefault("notification_hour", 9)
	v.SetDefault("notification_minute", 0)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_max_retries", 3)
	v.SetDefault("task_retry_delay", "1m")
	v.SetDefault("task_timeout", "5m")
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_retention_duration", "24h")

	// UI defaults
	v.SetDefault("ui_page_size", 20)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		AdoptAPet: AdoptAPet{
			BaseURL:     v.GetString("ADOPTAPET_BASE_URL"),
			APIKey:      v.GetString("ADOPTAPET_API_KEY"),
			CityOrZip:   v.GetString("ADOPTAPET_CITY_OR_ZIP"),
			GeoRange:    v.GetInt("ADOPTAPET_GEO_RANGE"),
			StartNumber: v.GetInt("ADOPTAPET_START_NUMBER"),
			EndNumber:   v.GetInt("ADOPTAPET_END_NUMBER"),
		},
		MockFeed: MockFeed{
			URL: v.GetString("MOCK_FEED_URL"),
		},
		Sync: Sync{
			FetchTimeout:    v.GetDuration("SYNC_FETCH_TIMEOUT"),
			DefaultTTLHours: v.GetInt("SYNC_DEFAULT_TTL_HOURS"),
		},
		Notifications: Notifications{
			Enabled: v.GetBool("NOTIFICATIONS_ENABLED"),
			Hour:    v.GetInt("NOTIFICATION_HOUR"),
			Minute:  v.GetInt("NOTIFICATION_MINUTE"),
		},
		Tasks: Tasks{
			Enabled:           v.GetBool("TASKS_ENABLED"),
			Workers:           v.GetInt("TASK_WORKERS"),
			MaxRetries:        v.GetInt("TASK_MAX_RETRIES"),
			RetryDelay:        v.GetDuration("TASK_RETRY_DELAY"),
			TaskTimeout:       v.GetDuration("TASK_TIMEOUT"),
			ReleaseAfter:      v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:   v.GetDuration("TASK_CLEANUP_INTERVAL"),
			RetentionDuration: v.GetDuration("TASK_RETENTION_DURATION"),
		},
		UI: UI{
			PageSize: v.GetInt("UI_PAGE_SIZE"),
		},
	}
}
