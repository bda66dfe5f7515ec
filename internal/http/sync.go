package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/pawdopt/internal/settingsstore"
	"github.com/mrlokans/pawdopt/internal/sync"
	"github.com/mrlokans/pawdopt/internal/tasks"
)

type SyncController struct {
	engine        *sync.Engine
	taskClient    *tasks.Client
	settingsStore *settingsstore.SettingsStore
}

func NewSyncController(engine *sync.Engine, taskClient *tasks.Client, settingsStore *settingsstore.SettingsStore) *SyncController {
	return &SyncController{
		engine:        engine,
		taskClient:    taskClient,
		settingsStore: settingsStore,
	}
}

type refreshRequest struct {
	Species string `json:"species"`
	Force   bool   `json:"force"`
}

// RefreshAnimals enqueues a background refresh for a sync scope. Runs the
// sync inline when the task queue is disabled.
// POST /api/animals/refresh
func (sc *SyncController) RefreshAnimals(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		respondBadRequest(c, "invalid refresh request: "+err.Error())
		return
	}

	if sc.taskClient == nil {
		result, err := sc.engine.Sync(c.Request.Context(), sync.Scope{
			Species:      req.Species,
			ForceRefresh: req.Force,
		})
		if err != nil {
			respondInternalError(c, err, "refresh animals")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":  "refresh completed",
			"inserted": result.Inserted,
			"updated":  result.Updated,
			"skipped":  string(result.Skipped),
		})
		return
	}

	ids, err := sc.taskClient.Add(tasks.RefreshTask{
		Species:      req.Species,
		ForceRefresh: req.Force,
	}).Save()
	if err != nil {
		respondInternalError(c, err, "enqueue refresh")
		return
	}

	respondAccepted(c, "refresh enqueued", gin.H{"task_ids": ids})
}

// GetSyncStatus reports the freshness of a sync scope.
// GET /api/sync/status?species=dog
func (sc *SyncController) GetSyncStatus(c *gin.Context) {
	species := c.Query("species")
	ttl := sc.settingsStore.CacheTTL()

	status := gin.H{
		"species":    species,
		"ttl_hours":  ttl.Hours(),
		"ttl_source": sc.settingsStore.CacheTTLSource(),
	}

	last := sc.engine.LastFetchedAt(species)
	if last.IsZero() {
		status["fresh"] = false
		status["last_fetched_at"] = nil
	} else {
		status["fresh"] = time.Since(last) < ttl
		status["last_fetched_at"] = last.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, status)
}

// InvalidateCache clears the freshness of a scope (all scopes when no
// species is given) so the next listing goes to the network.
// POST /api/sync/invalidate
func (sc *SyncController) InvalidateCache(c *gin.Context) {
	species := c.Query("species")
	sc.engine.Invalidate(species)
	respondSuccess(c, "cache invalidated")
}
