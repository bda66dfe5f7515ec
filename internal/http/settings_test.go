package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/pawdopt/internal/config"
	"github.com/mrlokans/pawdopt/internal/database"
	"github.com/mrlokans/pawdopt/internal/database/settings"
	"github.com/mrlokans/pawdopt/internal/settingsstore"
)

type fakeScheduler struct {
	rescheduled int
	ran         int
}

func (s *fakeScheduler) Reschedule() error { s.rescheduled++; return nil }
func (s *fakeScheduler) RunNow() error     { s.ran++; return nil }
func (s *fakeScheduler) IsRunning() bool   { return true }

func setupSettingsTest(t *testing.T) (*settingsstore.SettingsStore, *fakeScheduler, *gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_settings_api_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cfg := &config.Config{
		Sync:          config.Sync{DefaultTTLHours: 24},
		Notifications: config.Notifications{Enabled: true, Hour: 9},
		UI:            config.UI{PageSize: 20},
	}
	store := settingsstore.New(settings.NewRepository(db.DB), cfg)
	scheduler := &fakeScheduler{}
	controller := NewSettingsController(store, scheduler)

	router := gin.New()
	router.GET("/api/settings", controller.GetSettings)
	router.PUT("/api/settings", controller.UpdateSettings)
	router.POST("/api/notifications/test", controller.TestNotification)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return store, scheduler, router, cleanup
}

func TestSettingsController_GetSettings(t *testing.T) {
	_, _, router, cleanup := setupSettingsTest(t)
	defer cleanup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/settings", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(24), response["cache_ttl_hours"])
	assert.Equal(t, "default", response["cache_ttl_source"])
	assert.Equal(t, true, response["notification_enabled"])
}

func TestSettingsController_UpdateSettings(t *testing.T) {
	store, scheduler, router, cleanup := setupSettingsTest(t)
	defer cleanup()

	body := `{"cache_ttl_hours": 2, "notification_hour": 18, "notification_minute": 30}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/settings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, float64(2), store.CacheTTL().Hours())
	hour, minute := store.NotificationTime()
	assert.Equal(t, 18, hour)
	assert.Equal(t, 30, minute)

	// Changing notification settings must reschedule the reminder
	assert.Equal(t, 1, scheduler.rescheduled)
}

func TestSettingsController_UpdateSettings_RejectsInvalidValues(t *testing.T) {
	_, scheduler, router, cleanup := setupSettingsTest(t)
	defer cleanup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/settings", strings.NewReader(`{"cache_ttl_hours": -1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, scheduler.rescheduled)
}

func TestSettingsController_TestNotification(t *testing.T) {
	_, scheduler, router, cleanup := setupSettingsTest(t)
	defer cleanup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/notifications/test", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, 1, scheduler.ran)
}
