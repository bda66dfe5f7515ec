package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/pawdopt/internal/sync"
)

// RefreshTask refreshes one sync scope in the background. An empty species
// refreshes the all-species scope.
type RefreshTask struct {
	Species      string `json:"species"`
	ForceRefresh bool   `json:"force_refresh"`
}

// Config returns the queue configuration for refresh tasks.
func (t RefreshTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "refresh_animals",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// RefreshProcessor creates a processor function for RefreshTask.
func RefreshProcessor(engine *sync.Engine) backlite.QueueProcessor[RefreshTask] {
	return func(ctx context.Context, task RefreshTask) error {
		if engine == nil {
			return fmt.Errorf("sync engine not configured")
		}

		result, err := engine.Sync(ctx, sync.Scope{
			Species:      task.Species,
			ForceRefresh: task.ForceRefresh,
		})
		if err != nil {
			return fmt.Errorf("refresh scope %q: %w", task.Species, err)
		}

		if result.Skipped != sync.SkipNone {
			log.Printf("[TASK] Refresh scope %q skipped: %s", task.Species, result.Skipped)
		} else {
			log.Printf("[TASK] Refreshed scope %q from %s: %d new, %d updated",
				task.Species, result.Source, result.Inserted, result.Updated)
		}

		return nil
	}
}

// NewRefreshQueue creates a backlite queue for refresh tasks.
func NewRefreshQueue(engine *sync.Engine) backlite.Queue {
	return backlite.NewQueue(RefreshProcessor(engine))
}
