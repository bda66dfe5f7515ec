package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/pawdopt/internal/entities"
)

type fakePicker struct {
	animal *entities.Animal
}

func (p *fakePicker) Random() (*entities.Animal, error) {
	if p.animal == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return p.animal, nil
}

func TestPickRandom(t *testing.T) {
	picker := &fakePicker{animal: &entities.Animal{
		ExternalID: "a-1",
		Name:       "Max",
		City:       "Porto",
	}}

	notification, err := PickRandom(picker)
	require.NoError(t, err)

	assert.Equal(t, "a-1", notification.AnimalID)
	assert.Equal(t, "Max", notification.AnimalName)
	assert.Contains(t, notification.Body, "Max")
	assert.Contains(t, notification.Body, "Porto")
}

func TestPickRandom_NoCity(t *testing.T) {
	picker := &fakePicker{animal: &entities.Animal{ExternalID: "a-1", Name: "Max"}}

	notification, err := PickRandom(picker)
	require.NoError(t, err)
	assert.Contains(t, notification.Body, "Max")
}

func TestPickRandom_EmptyStore(t *testing.T) {
	_, err := PickRandom(&fakePicker{})
	assert.ErrorIs(t, err, ErrNoAnimals)
}
