// Package sync implements the refresh pipeline that keeps the local animal
// store aligned with the remote sources.
//
// Each requested species is a separate scope with its own freshness window
// and in-flight guard. A sync attempt walks the configured sources in order
// (primary first), normalizes the first payload that decodes, and applies the
// whole batch in one transaction. Follow state in the store is never touched
// by a sync.
package sync

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	gosync "sync"
	"time"

	"github.com/google/uuid"

	"github.com/mrlokans/pawdopt/internal/entities"
	"github.com/mrlokans/pawdopt/internal/normalize"
)

// Source fetches one remote source's raw payload. Implementations must not
// decode the payload; that is the normalizer's job.
type Source interface {
	Kind() normalize.SourceKind
	Fetch(ctx context.Context, species string) ([]byte, error)
}

// AnimalStore is the slice of the local store the engine needs.
type AnimalStore interface {
	List(species string) ([]entities.Animal, error)
	UpsertBatch(ctx context.Context, batch []entities.Animal) (inserted, updated int, err error)
}

// TTLProvider returns the current freshness window. Resolved on every sync
// attempt so a settings change takes effect without a restart.
type TTLProvider func() time.Duration

// Scope describes one sync request.
type Scope struct {
	// Species narrows the request; empty means all species. A non-empty
	// species also overrides whatever species the payload reports.
	Species string
	// ForceRefresh bypasses the freshness window but not the in-flight guard.
	ForceRefresh bool
}

// SkipReason explains why a sync attempt returned cached data without
// touching the network.
type SkipReason string

const (
	SkipNone     SkipReason = ""
	SkipInFlight SkipReason = "in_flight"
	SkipFresh    SkipReason = "fresh"
)

// Result is the outcome of one Sync call.
type Result struct {
	Animals  []entities.Animal
	Skipped  SkipReason
	Source   normalize.SourceKind
	Inserted int
	Updated  int
}

// Engine coordinates per-scope syncs against an ordered source chain.
type Engine struct {
	store   AnimalStore
	sources []Source
	ttl     TTLProvider

	mu     gosync.Mutex
	scopes map[string]*scopeState

	// now is swappable in tests.
	now func() time.Time
}

// NewEngine creates a sync engine. Sources are tried in the given order.
func NewEngine(store AnimalStore, sources []Source, ttl TTLProvider) *Engine {
	return &Engine{
		store:   store,
		sources: sources,
		ttl:     ttl,
		scopes:  make(map[string]*scopeState),
		now:     time.Now,
	}
}

// Sync refreshes the scope's animals if needed and returns the stored list.
// When the scope is already being refreshed, or the cache is still fresh and
// no force flag is set, the current store contents are returned unchanged.
func (e *Engine) Sync(ctx context.Context, scope Scope) (*Result, error) {
	// Species is lowercase everywhere past this point: stored rows, the
	// override, and the scope key all share one casing.
	scope.Species = normalizeSpecies(scope.Species)

	state, skip := e.acquire(scope)
	if skip != SkipNone {
		animals, err := e.store.List(scope.Species)
		if err != nil {
			return nil, fmt.Errorf("failed to read cached animals: %w", err)
		}
		return &Result{Animals: animals, Skipped: skip}, nil
	}
	defer e.release(state)

	fetchedAt := e.now()
	records, kind, err := e.fetch(ctx, scope.Species)
	if err != nil {
		return nil, err
	}

	batch := e.prepare(records, scope.Species, fetchedAt)
	inserted, updated, err := e.store.UpsertBatch(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to store sync batch: %w", err)
	}
	log.Printf("Sync: %s scope %q stored %d new, %d updated", kind, scopeKey(scope.Species), inserted, updated)

	e.mu.Lock()
	state.lastFetchedAt = e.now()
	e.mu.Unlock()

	animals, err := e.store.List(scope.Species)
	if err != nil {
		return nil, fmt.Errorf("failed to read synced animals: %w", err)
	}
	return &Result{Animals: animals, Source: kind, Inserted: inserted, Updated: updated}, nil
}

// LastFetchedAt returns when the scope last completed a successful sync.
// Zero when the scope has never synced.
func (e *Engine) LastFetchedAt(species string) time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	if state, ok := e.scopes[scopeKey(normalizeSpecies(species))]; ok {
		return state.lastFetchedAt
	}
	return time.Time{}
}

// Invalidate clears the scope's freshness so the next Sync goes to the
// network. An empty species invalidates every scope.
func (e *Engine) Invalidate(species string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	species = normalizeSpecies(species)
	if species == "" {
		for _, state := range e.scopes {
			state.lastFetchedAt = time.Time{}
		}
		return
	}
	if state, ok := e.scopes[scopeKey(species)]; ok {
		state.lastFetchedAt = time.Time{}
	}
}

// acquire checks the scope's guard and freshness under the lock. On SkipNone
// the caller owns the in-flight flag and must release it.
func (e *Engine) acquire(scope Scope) (*scopeState, SkipReason) {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := scopeKey(scope.Species)
	state, ok := e.scopes[key]
	if !ok {
		state = &scopeState{}
		e.scopes[key] = state
	}

	if state.inFlight {
		return state, SkipInFlight
	}
	if !scope.ForceRefresh && state.fresh(e.now(), e.ttl()) {
		return state, SkipFresh
	}

	state.inFlight = true
	return state, SkipNone
}

func (e *Engine) release(state *scopeState) {
	e.mu.Lock()
	state.inFlight = false
	e.mu.Unlock()
}

// fetch walks the source chain and returns the first payload that both
// downloads and decodes. Failures of later sources are logged; if nothing
// succeeds the primary source's error is the one surfaced.
func (e *Engine) fetch(ctx context.Context, species string) ([]normalize.Animal, normalize.SourceKind, error) {
	syncErr := &SyncError{Species: species}

	for i, source := range e.sources {
		body, err := source.Fetch(ctx, species)
		if err == nil {
			var normalizer normalize.Normalizer
			normalizer, err = normalize.ForKind(source.Kind())
			if err == nil {
				var records []normalize.Animal
				records, err = normalizer.Normalize(body)
				if err == nil {
					if i > 0 {
						log.Printf("Sync: fell back to %s for scope %q", source.Kind(), scopeKey(species))
					}
					return records, source.Kind(), nil
				}
			}
		}

		log.Printf("Sync: source %s failed for scope %q: %v", source.Kind(), scopeKey(species), err)
		if i == 0 {
			syncErr.Primary = err
		} else if syncErr.Fallback == nil {
			syncErr.Fallback = err
		}
	}

	return nil, "", syncErr
}

// prepare turns normalized records into a store batch: applies the species
// override, fills in synthesized IDs and missing timestamps, and deduplicates
// by external ID with the later record winning.
func (e *Engine) prepare(records []normalize.Animal, species string, fetchedAt time.Time) []entities.Animal {
	batch := make([]entities.Animal, 0, len(records))
	seen := make(map[string]int, len(records))

	for _, record := range records {
		if species != "" {
			record.Species = species
		}
		if record.Species == "" {
			record.Species = entities.SpeciesUnknown
		}
		if record.ExternalID == "" {
			record.ExternalID = synthesizeID(record)
		}
		if record.LastModified.IsZero() {
			record.LastModified = fetchedAt
		}

		animal := entities.Animal{
			ExternalID:     record.ExternalID,
			Name:           record.Name,
			Species:        record.Species,
			Sex:            record.Sex,
			Size:           record.Size,
			Age:            record.Age,
			PrimaryBreed:   record.PrimaryBreed,
			SecondaryBreed: record.SecondaryBreed,
			Color:          record.Color,
			City:           record.City,
			ImageURL:       record.ImageURL,
			LastModified:   record.LastModified,
		}

		if idx, dup := seen[animal.ExternalID]; dup {
			batch[idx] = animal
			continue
		}
		seen[animal.ExternalID] = len(batch)
		batch = append(batch, animal)
	}

	return batch
}

// synthesizeID derives a stable external ID for records the source did not
// key. The same name, species and city always hash to the same ID so repeated
// syncs update rather than duplicate. Records with none of the three get a
// random ID.
func synthesizeID(record normalize.Animal) string {
	if record.Name == "" && record.Species == "" && record.City == "" {
		return "gen-" + uuid.NewString()
	}
	sum := sha256.Sum256([]byte(record.Name + "|" + record.Species + "|" + record.City))
	return "gen-" + hex.EncodeToString(sum[:8])
}

func scopeKey(species string) string {
	if species == "" {
		return "all"
	}
	return species
}

// normalizeSpecies clamps caller-supplied species ("Dog", " CAT ") to the
// canonical lowercase form before it reaches the scope map or the store.
func normalizeSpecies(species string) string {
	return strings.ToLower(strings.TrimSpace(species))
}
