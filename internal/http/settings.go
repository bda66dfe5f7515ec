package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/pawdopt/internal/settingsstore"
)

// NotifyScheduler is the slice of the notification scheduler the settings
// endpoints need to apply changes and report status.
type NotifyScheduler interface {
	Reschedule() error
	RunNow() error
	IsRunning() bool
}

type SettingsController struct {
	settingsStore *settingsstore.SettingsStore
	scheduler     NotifyScheduler
}

func NewSettingsController(settingsStore *settingsstore.SettingsStore, scheduler NotifyScheduler) *SettingsController {
	return &SettingsController{
		settingsStore: settingsStore,
		scheduler:     scheduler,
	}
}

// GetSettings returns the effective settings and where each one comes from.
// GET /api/settings
func (sc *SettingsController) GetSettings(c *gin.Context) {
	hour, minute := sc.settingsStore.NotificationTime()

	response := gin.H{
		"theme":                sc.settingsStore.Theme(),
		"page_size":            sc.settingsStore.PageSize(),
		"cache_ttl_hours":      sc.settingsStore.CacheTTL().Hours(),
		"cache_ttl_source":     sc.settingsStore.CacheTTLSource(),
		"notification_enabled": sc.settingsStore.NotificationEnabled(),
		"notification_hour":    hour,
		"notification_minute":  minute,
		"scheduler_running":    false,
	}
	if sc.scheduler != nil {
		response["scheduler_running"] = sc.scheduler.IsRunning()
	}

	c.JSON(http.StatusOK, response)
}

type updateSettingsRequest struct {
	Theme               *string `json:"theme"`
	PageSize            *int    `json:"page_size"`
	CacheTTLHours       *int    `json:"cache_ttl_hours"`
	NotificationEnabled *bool   `json:"notification_enabled"`
	NotificationHour    *int    `json:"notification_hour"`
	NotificationMinute  *int    `json:"notification_minute"`
}

// UpdateSettings applies a partial settings update. Notification changes
// reschedule the daily reminder immediately.
// PUT /api/settings
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid settings: "+err.Error())
		return
	}

	if req.Theme != nil {
		if err := sc.settingsStore.SetTheme(*req.Theme); err != nil {
			respondInternalError(c, err, "save theme")
			return
		}
	}
	if req.PageSize != nil {
		if err := sc.settingsStore.SetPageSize(*req.PageSize); err != nil {
			respondBadRequest(c, err.Error())
			return
		}
	}
	if req.CacheTTLHours != nil {
		if err := sc.settingsStore.SetCacheTTLHours(*req.CacheTTLHours); err != nil {
			respondBadRequest(c, err.Error())
			return
		}
	}

	notificationChanged := false
	if req.NotificationEnabled != nil {
		if err := sc.settingsStore.SetNotificationEnabled(*req.NotificationEnabled); err != nil {
			respondInternalError(c, err, "save notification flag")
			return
		}
		notificationChanged = true
	}
	if req.NotificationHour != nil || req.NotificationMinute != nil {
		hour, minute := sc.settingsStore.NotificationTime()
		if req.NotificationHour != nil {
			hour = *req.NotificationHour
		}
		if req.NotificationMinute != nil {
			minute = *req.NotificationMinute
		}
		if err := sc.settingsStore.SetNotificationTime(hour, minute); err != nil {
			respondBadRequest(c, err.Error())
			return
		}
		notificationChanged = true
	}

	if notificationChanged && sc.scheduler != nil {
		if err := sc.scheduler.Reschedule(); err != nil {
			respondInternalError(c, err, "reschedule notifications")
			return
		}
	}

	respondSuccess(c, "settings updated")
}

// TestNotification fires the daily reminder immediately.
// POST /api/notifications/test
func (sc *SettingsController) TestNotification(c *gin.Context) {
	if sc.scheduler == nil {
		respondError(c, http.StatusServiceUnavailable, "notifications not configured")
		return
	}
	if err := sc.scheduler.RunNow(); err != nil {
		respondInternalError(c, err, "test notification")
		return
	}
	respondAccepted(c, "notification triggered", nil)
}
