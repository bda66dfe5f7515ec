package sync

import "fmt"

// SyncError reports that every remote source failed for a sync attempt. The
// primary source's error is the interesting one; the fallback error is kept
// for diagnostics.
type SyncError struct {
	Species  string
	Primary  error
	Fallback error
}

func (e *SyncError) Error() string {
	scope := e.Species
	if scope == "" {
		scope = "all"
	}
	if e.Fallback != nil {
		return fmt.Sprintf("sync failed for scope %q: primary: %v; fallback: %v", scope, e.Primary, e.Fallback)
	}
	return fmt.Sprintf("sync failed for scope %q: %v", scope, e.Primary)
}

func (e *SyncError) Unwrap() error {
	return e.Primary
}
