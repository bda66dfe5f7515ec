// Package normalize translates source-specific payloads into the canonical
// animal attribute set used by the sync engine.
//
// Each remote source exposes a structurally different envelope and field
// naming, so there is one Normalizer implementation per SourceKind. A broken
// envelope fails the whole payload; individually malformed entries are
// skipped and logged.
package normalize

import (
	"fmt"
	"strings"
	"time"
)

// SourceKind identifies which remote source produced a payload.
type SourceKind string

const (
	// SourceAdoptAPet is the primary pet-search API.
	SourceAdoptAPet SourceKind = "adoptapet"
	// SourceMockFeed is the static fallback feed.
	SourceMockFeed SourceKind = "mockfeed"
)

// Animal is the canonical attribute record produced from any source payload.
// ExternalID may be empty when the source did not assign one; the sync
// engine synthesizes a key in that case. Species is lowercase or empty when
// neither the payload nor the heuristic could determine one.
type Animal struct {
	ExternalID     string
	Name           string
	Species        string
	Sex            string
	Size           string
	Age            string
	PrimaryBreed   string
	SecondaryBreed string
	Color          string
	City           string
	ImageURL       string

	// LastModified is zero when the payload carried no parseable
	// modification time; the engine substitutes the fetch time.
	LastModified time.Time
}

// Normalizer decodes one source's payload into canonical animal records.
type Normalizer interface {
	Kind() SourceKind
	Normalize(body []byte) ([]Animal, error)
}

// ForKind returns the normalizer for a source kind.
func ForKind(kind SourceKind) (Normalizer, error) {
	switch kind {
	case SourceAdoptAPet:
		return &AdoptAPetNormalizer{}, nil
	case SourceMockFeed:
		return &MockFeedNormalizer{}, nil
	default:
		return nil, fmt.Errorf("unknown source kind: %s", kind)
	}
}

// EnvelopeError indicates the payload's root container is missing or not in
// the expected shape. The sync engine treats it like a fetch failure and
// moves on to the next source.
type EnvelopeError struct {
	Kind   SourceKind
	Reason string
}

func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("invalid %s payload: %s", e.Kind, e.Reason)
}

// catBreedKeywords is the fixed keyword table for the species heuristic.
var catBreedKeywords = []string{
	"maine coon",
	"persian",
	"siamese",
	"bengal",
	"british shorthair",
	"ragdoll",
}

// InferSpecies classifies an animal as cat, dog or unknown from its image
// URL host and breed name. Best effort only: callers must prefer an explicit
// payload species field or a request-scoped species override when available.
func InferSpecies(imageURL, breed string) string {
	lowerURL := strings.ToLower(imageURL)
	if strings.Contains(lowerURL, "placecats.com") {
		return "cat"
	}
	if strings.Contains(lowerURL, "place.dog") {
		return "dog"
	}

	lowerBreed := strings.ToLower(breed)
	if lowerBreed == "" {
		return "unknown"
	}
	for _, keyword := range catBreedKeywords {
		if strings.Contains(lowerBreed, keyword) {
			return "cat"
		}
	}
	if strings.Contains(lowerBreed, "cat") {
		return "cat"
	}
	return "dog"
}

// cleanSpecies lowercases and trims a payload species value.
func cleanSpecies(species string) string {
	return strings.ToLower(strings.TrimSpace(species))
}

// parseLastModified parses the payload modification timestamp. Returns zero
// time when absent or unparseable.
func parseLastModified(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	// The search API sometimes omits the timezone designator.
	if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse("2006-01-02 15:04:05", raw); err == nil {
		return t.UTC()
	}
	return time.Time{}
}
