package normalize

import (
	"encoding/json"
	"log"
)

// MockFeedNormalizer decodes the static fallback feed:
//
//	{"pets": [{"id": ..., "name": ..., "breed": ..., "gender": ..., ...}]}
//
// The feed has no status field and no pagination; an entry's species may be
// absent, in which case the image/breed heuristic decides.
type MockFeedNormalizer struct{}

type mockFeedEnvelope struct {
	Pets []mockFeedRecord `json:"pets"`
}

type mockFeedRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Species     string `json:"species"`
	Breed       string `json:"breed"`
	Gender      string `json:"gender"`
	Age         string `json:"age"`
	Size        string `json:"size"`
	Color       string `json:"color"`
	Location    string `json:"location"`
	Image       string `json:"image"`
	Description string `json:"description"`
	UpdatedAt   string `json:"updated_at"`
}

func (n *MockFeedNormalizer) Kind() SourceKind {
	return SourceMockFeed
}

func (n *MockFeedNormalizer) Normalize(body []byte) ([]Animal, error) {
	var envelope mockFeedEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &EnvelopeError{Kind: SourceMockFeed, Reason: err.Error()}
	}
	if envelope.Pets == nil {
		return nil, &EnvelopeError{Kind: SourceMockFeed, Reason: "missing pets collection"}
	}

	result := make([]Animal, 0, len(envelope.Pets))
	for i, pet := range envelope.Pets {
		if pet.ID == "" && pet.Name == "" {
			log.Printf("Normalize: skipping mockfeed record %d with no identifier or name", i)
			continue
		}

		species := cleanSpecies(pet.Species)
		if species == "" {
			species = InferSpecies(pet.Image, pet.Breed)
		}

		result = append(result, Animal{
			ExternalID:   pet.ID,
			Name:         pet.Name,
			Species:      species,
			Sex:          pet.Gender,
			Size:         pet.Size,
			Age:          pet.Age,
			PrimaryBreed: pet.Breed,
			Color:        pet.Color,
			City:         pet.Location,
			ImageURL:     pet.Image,
			LastModified: parseLastModified(pet.UpdatedAt),
		})
	}

	return result, nil
}
