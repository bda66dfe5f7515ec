package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/pawdopt/internal/database"
	"github.com/mrlokans/pawdopt/internal/filter"
	"github.com/mrlokans/pawdopt/internal/settingsstore"
	"github.com/mrlokans/pawdopt/internal/sync"
	"github.com/mrlokans/pawdopt/internal/tasks"
)

// RouterConfig carries every dependency the router needs, so wiring stays in
// one place and handlers can be constructed against narrow interfaces.
type RouterConfig struct {
	Database *database.Database
	Version  string

	AnimalsStore  AnimalsStore
	FollowService FollowService
	Engine        *sync.Engine
	Filters       *filter.Manager
	SettingsStore *settingsstore.SettingsStore

	// TaskClient may be nil; refreshes then run inline.
	TaskClient *tasks.Client
	// Scheduler may be nil; notification endpoints then report unavailable.
	Scheduler NotifyScheduler
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	animalsController := NewAnimalsController(cfg.AnimalsStore, cfg.Engine, cfg.Filters)
	followController := NewFollowController(cfg.FollowService, cfg.AnimalsStore)
	filtersController := NewFiltersController(cfg.Filters)
	syncController := NewSyncController(cfg.Engine, cfg.TaskClient, cfg.SettingsStore)
	settingsController := NewSettingsController(cfg.SettingsStore, cfg.Scheduler)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Animal listing endpoints
	router.GET("/api/animals", animalsController.ListAnimals)
	router.GET("/api/animals/random", animalsController.GetRandomAnimal)
	router.GET("/api/animals/locations", animalsController.GetLocations)
	router.GET("/api/animals/following", followController.ListFollowed)
	router.GET("/api/animals/:id", animalsController.GetAnimal)

	// Follow endpoints
	router.POST("/api/animals/:id/follow", followController.FollowAnimal)
	router.DELETE("/api/animals/:id/follow", followController.UnfollowAnimal)
	router.POST("/api/animals/:id/follow/toggle", followController.ToggleFollow)

	// Sync endpoints
	router.POST("/api/animals/refresh", syncController.RefreshAnimals)
	router.GET("/api/sync/status", syncController.GetSyncStatus)
	router.POST("/api/sync/invalidate", syncController.InvalidateCache)

	// Filter endpoints
	router.GET("/api/filters", filtersController.GetFilters)
	router.PUT("/api/filters", filtersController.UpdateFilters)
	router.DELETE("/api/filters", filtersController.ClearFilters)

	// Settings endpoints
	router.GET("/api/settings", settingsController.GetSettings)
	router.PUT("/api/settings", settingsController.UpdateSettings)
	router.POST("/api/notifications/test", settingsController.TestNotification)

	return router
}
