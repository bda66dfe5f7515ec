package tasks

import "time"

// Config tunes the background queue that runs animal refreshes.
type Config struct {
	// Workers is the number of concurrent workers. Refresh tasks are mostly
	// network-bound and the engine skips overlapping scopes, so 2 is plenty.
	Workers int

	// MaxRetries is the queue-level retry ceiling for failed tasks.
	MaxRetries int

	// RetryDelay is the backoff between retries.
	RetryDelay time.Duration

	// TaskTimeout bounds a single task run. Must exceed the per-source fetch
	// timeout times the source chain length.
	TaskTimeout time.Duration

	// ReleaseAfter is when tasks claimed by a dead worker go back to the queue.
	ReleaseAfter time.Duration

	// CleanupInterval is how often finished task rows are pruned.
	CleanupInterval time.Duration

	// RetentionDuration is how long finished task rows are kept for /api
	// status inspection before pruning.
	RetentionDuration time.Duration
}

// DefaultConfig returns the defaults the refresh workload is tuned for.
func DefaultConfig() Config {
	return Config{
		Workers:           2,
		MaxRetries:        3,
		RetryDelay:        1 * time.Minute,
		TaskTimeout:       5 * time.Minute,
		ReleaseAfter:      15 * time.Minute,
		CleanupInterval:   1 * time.Hour,
		RetentionDuration: 24 * time.Hour,
	}
}
