package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockFeedNormalizer_Normalize(t *testing.T) {
	body := `{
		"pets": [
			{
				"id": "m-1",
				"name": "Luna",
				"species": "Cat",
				"breed": "Persian",
				"gender": "f",
				"age": "young",
				"size": "small",
				"color": "white",
				"location": "Porto",
				"image": "https://placecats.com/300/200",
				"updated_at": "2025-03-10T08:30:00Z"
			}
		]
	}`

	normalizer := &MockFeedNormalizer{}
	animals, err := normalizer.Normalize([]byte(body))
	require.NoError(t, err)
	require.Len(t, animals, 1)

	animal := animals[0]
	assert.Equal(t, "m-1", animal.ExternalID)
	assert.Equal(t, "Luna", animal.Name)
	assert.Equal(t, "cat", animal.Species)
	assert.Equal(t, "f", animal.Sex)
	assert.Equal(t, "Persian", animal.PrimaryBreed)
	assert.Equal(t, "Porto", animal.City)
	assert.False(t, animal.LastModified.IsZero())
}

func TestMockFeedNormalizer_SpeciesHeuristic(t *testing.T) {
	body := `{
		"pets": [
			{"id": "m-1", "name": "Mittens", "image": "https://placecats.com/1/1"},
			{"id": "m-2", "name": "Rex", "image": "https://place.dog/1/1"},
			{"id": "m-3", "name": "Pat", "breed": "Bengal"}
		]
	}`

	normalizer := &MockFeedNormalizer{}
	animals, err := normalizer.Normalize([]byte(body))
	require.NoError(t, err)
	require.Len(t, animals, 3)

	assert.Equal(t, "cat", animals[0].Species)
	assert.Equal(t, "dog", animals[1].Species)
	assert.Equal(t, "cat", animals[2].Species)
}

func TestMockFeedNormalizer_BrokenEnvelope(t *testing.T) {
	normalizer := &MockFeedNormalizer{}

	for name, body := range map[string]string{
		"not json":     `oops`,
		"missing pets": `{}`,
		"null pets":    `{"pets": null}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := normalizer.Normalize([]byte(body))
			var envErr *EnvelopeError
			assert.ErrorAs(t, err, &envErr)
		})
	}
}
