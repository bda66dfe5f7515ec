package follow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/pawdopt/internal/entities"
)

type fakeStore struct {
	animals map[string]*entities.Animal
}

func newFakeStore(animals ...entities.Animal) *fakeStore {
	store := &fakeStore{animals: make(map[string]*entities.Animal)}
	for i := range animals {
		store.animals[animals[i].ExternalID] = &animals[i]
	}
	return store
}

func (s *fakeStore) GetByExternalID(externalID string) (*entities.Animal, error) {
	animal, ok := s.animals[externalID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *animal
	return &copied, nil
}

func (s *fakeStore) SetFollowing(externalID string, following bool) error {
	animal, ok := s.animals[externalID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	animal.IsFollowing = following
	return nil
}

func TestService_SetFollow(t *testing.T) {
	store := newFakeStore(entities.Animal{ExternalID: "a-1", Name: "Max"})
	service := NewService(store)

	animal, err := service.SetFollow("a-1", true)
	require.NoError(t, err)
	assert.True(t, animal.IsFollowing)

	animal, err = service.SetFollow("a-1", false)
	require.NoError(t, err)
	assert.False(t, animal.IsFollowing)
}

func TestService_SetFollow_UnknownAnimal(t *testing.T) {
	service := NewService(newFakeStore())

	_, err := service.SetFollow("missing", true)
	assert.ErrorIs(t, err, ErrAnimalNotFound)
}

func TestService_ToggleFollow(t *testing.T) {
	store := newFakeStore(entities.Animal{ExternalID: "a-1", Name: "Max"})
	service := NewService(store)

	animal, err := service.ToggleFollow("a-1")
	require.NoError(t, err)
	assert.True(t, animal.IsFollowing)

	animal, err = service.ToggleFollow("a-1")
	require.NoError(t, err)
	assert.False(t, animal.IsFollowing)
}

func TestService_ToggleFollow_UnknownAnimal(t *testing.T) {
	service := NewService(newFakeStore())

	_, err := service.ToggleFollow("missing")
	assert.ErrorIs(t, err, ErrAnimalNotFound)
}
