package filter

import "sync"

// Manager holds the process-wide active selection behind a lock, so HTTP
// handlers can read and replace it concurrently.
type Manager struct {
	mu        sync.RWMutex
	selection Selection
}

// NewManager creates a manager with an empty selection.
func NewManager() *Manager {
	return &Manager{}
}

// Snapshot returns a copy of the current selection.
func (m *Manager) Snapshot() Selection {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copySelection(m.selection)
}

// Replace swaps in a new selection.
func (m *Manager) Replace(selection Selection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selection = copySelection(selection)
}

// Clear resets the selection to empty.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selection = Selection{}
}

// copySelection detaches the slices so callers cannot mutate shared state.
func copySelection(s Selection) Selection {
	out := Selection{FollowingOnly: s.FollowingOnly}
	if len(s.Species) > 0 {
		out.Species = append([]string(nil), s.Species...)
	}
	if len(s.Breeds) > 0 {
		out.Breeds = append([]string(nil), s.Breeds...)
	}
	if len(s.Genders) > 0 {
		out.Genders = append([]string(nil), s.Genders...)
	}
	if len(s.Ages) > 0 {
		out.Ages = append([]string(nil), s.Ages...)
	}
	return out
}
