package settingsstore

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/pawdopt/internal/config"
	"github.com/mrlokans/pawdopt/internal/database/settings"
	"github.com/mrlokans/pawdopt/internal/entities"
)

func setupTestStore(t *testing.T) (*SettingsStore, func()) {
	dbPath := "./test_settingsstore_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Setting{})
	require.NoError(t, err)

	cfg := &config.Config{
		Sync:          config.Sync{DefaultTTLHours: 24},
		Notifications: config.Notifications{Enabled: true, Hour: 9, Minute: 0},
		UI:            config.UI{PageSize: 20},
	}

	store := New(settings.NewRepository(db), cfg)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return store, cleanup
}

func TestSettingsStore_CacheTTL_Default(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.Equal(t, 24*time.Hour, store.CacheTTL())
	assert.Equal(t, "default", store.CacheTTLSource())
}

func TestSettingsStore_CacheTTL_DatabaseWins(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	t.Setenv("CACHE_TTL_HOURS", "6")
	require.NoError(t, store.SetCacheTTLHours(2))

	assert.Equal(t, 2*time.Hour, store.CacheTTL())
	assert.Equal(t, "database", store.CacheTTLSource())
}

func TestSettingsStore_CacheTTL_Environment(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	t.Setenv("CACHE_TTL_HOURS", "6")
	assert.Equal(t, 6*time.Hour, store.CacheTTL())
	assert.Equal(t, "environment", store.CacheTTLSource())
}

func TestSettingsStore_CacheTTL_ClearRestoresFallback(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	require.NoError(t, store.SetCacheTTLHours(2))
	require.NoError(t, store.ClearCacheTTL())
	require.NoError(t, store.ClearCacheTTL()) // clearing twice is fine

	assert.Equal(t, 24*time.Hour, store.CacheTTL())
}

func TestSettingsStore_SetCacheTTLHours_RejectsNonPositive(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.Error(t, store.SetCacheTTLHours(0))
	assert.Error(t, store.SetCacheTTLHours(-1))
}

func TestSettingsStore_NotificationTime(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	hour, minute := store.NotificationTime()
	assert.Equal(t, 9, hour)
	assert.Equal(t, 0, minute)

	require.NoError(t, store.SetNotificationTime(18, 30))
	hour, minute = store.NotificationTime()
	assert.Equal(t, 18, hour)
	assert.Equal(t, 30, minute)

	assert.Error(t, store.SetNotificationTime(24, 0))
	assert.Error(t, store.SetNotificationTime(9, 60))
}

func TestSettingsStore_NotificationEnabled(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.True(t, store.NotificationEnabled())

	require.NoError(t, store.SetNotificationEnabled(false))
	assert.False(t, store.NotificationEnabled())
}

func TestSettingsStore_PageSize(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.Equal(t, 20, store.PageSize())

	require.NoError(t, store.SetPageSize(50))
	assert.Equal(t, 50, store.PageSize())

	assert.Error(t, store.SetPageSize(0))
}

func TestSettingsStore_Theme(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.Equal(t, "", store.Theme())

	require.NoError(t, store.SetTheme("dark"))
	assert.Equal(t, "dark", store.Theme())
}
