package sync

import "time"

// scopeState tracks the freshness and in-flight status of one sync scope.
// One scope per requested species; the empty species is its own scope.
type scopeState struct {
	inFlight      bool
	lastFetchedAt time.Time
}

// fresh reports whether a successful fetch happened within the TTL window.
// A zero lastFetchedAt means the scope has never been fetched.
func (s *scopeState) fresh(now time.Time, ttl time.Duration) bool {
	if s.lastFetchedAt.IsZero() {
		return false
	}
	return now.Sub(s.lastFetchedAt) < ttl
}
