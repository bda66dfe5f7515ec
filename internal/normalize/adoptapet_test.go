package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdoptAPetNormalizer_Normalize(t *testing.T) {
	body := `{
		"status": "ok",
		"pets": [
			{
				"pet_id": "123",
				"pet_name": "Max",
				"species": "Dog",
				"sex": "m",
				"age": "adult",
				"size": "large",
				"primary_breed": "Labrador",
				"secondary_breed": "Collie",
				"addr_city": "Porto",
				"color": "black",
				"last_modified": "2025-03-10T08:30:00Z",
				"results_photo_url": "https://example.com/small.jpg",
				"large_results_photo_url": "https://example.com/large.jpg"
			}
		]
	}`

	normalizer := &AdoptAPetNormalizer{}
	animals, err := normalizer.Normalize([]byte(body))
	require.NoError(t, err)
	require.Len(t, animals, 1)

	animal := animals[0]
	assert.Equal(t, "123", animal.ExternalID)
	assert.Equal(t, "Max", animal.Name)
	assert.Equal(t, "dog", animal.Species)
	assert.Equal(t, "Labrador", animal.PrimaryBreed)
	assert.Equal(t, "Collie", animal.SecondaryBreed)
	assert.Equal(t, "Porto", animal.City)
	assert.Equal(t, "https://example.com/large.jpg", animal.ImageURL)
	assert.False(t, animal.LastModified.IsZero())
}

func TestAdoptAPetNormalizer_NestedFallbacks(t *testing.T) {
	body := `{
		"status": "ok",
		"pets": [
			{
				"pet_id": "123",
				"pet_name": "Max",
				"breeds": {"primary": "Labrador"},
				"contact": {"city": "Braga"},
				"photos": [{"url": "https://example.com/photo.jpg", "size": "large"}]
			}
		]
	}`

	normalizer := &AdoptAPetNormalizer{}
	animals, err := normalizer.Normalize([]byte(body))
	require.NoError(t, err)
	require.Len(t, animals, 1)

	animal := animals[0]
	assert.Equal(t, "Labrador", animal.PrimaryBreed)
	assert.Equal(t, "Braga", animal.City)
	assert.Equal(t, "https://example.com/photo.jpg", animal.ImageURL)
	// No species in payload: heuristic classifies by breed
	assert.Equal(t, "dog", animal.Species)
}

func TestAdoptAPetNormalizer_APIException(t *testing.T) {
	body := `{"status": "error", "exception": {"msg": "invalid key", "details": "key expired"}}`

	normalizer := &AdoptAPetNormalizer{}
	_, err := normalizer.Normalize([]byte(body))

	var envErr *EnvelopeError
	require.ErrorAs(t, err, &envErr)
	assert.Equal(t, SourceAdoptAPet, envErr.Kind)
	assert.Contains(t, envErr.Reason, "invalid key")
}

func TestAdoptAPetNormalizer_BrokenEnvelope(t *testing.T) {
	normalizer := &AdoptAPetNormalizer{}

	for name, body := range map[string]string{
		"not json":     `<html>offline</html>`,
		"bad status":   `{"status": "maintenance"}`,
		"missing pets": `{"status": "ok"}`,
		"null pets":    `{"status": "ok", "pets": null}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := normalizer.Normalize([]byte(body))
			var envErr *EnvelopeError
			assert.ErrorAs(t, err, &envErr)
		})
	}
}

func TestAdoptAPetNormalizer_SkipsUnidentifiableRecords(t *testing.T) {
	body := `{
		"status": "ok",
		"pets": [
			{"pet_id": "", "pet_name": ""},
			{"pet_id": "123", "pet_name": "Max", "species": "dog"}
		]
	}`

	normalizer := &AdoptAPetNormalizer{}
	animals, err := normalizer.Normalize([]byte(body))
	require.NoError(t, err)
	require.Len(t, animals, 1)
	assert.Equal(t, "Max", animals[0].Name)
}

func TestAdoptAPetNormalizer_EmptyPetsIsValid(t *testing.T) {
	normalizer := &AdoptAPetNormalizer{}
	animals, err := normalizer.Normalize([]byte(`{"status": "ok", "pets": []}`))
	require.NoError(t, err)
	assert.Empty(t, animals)
}
