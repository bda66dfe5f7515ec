// Package notify implements the daily adoption reminder: once a day, at a
// configurable time, one random stored animal is promoted to the user.
package notify

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/pawdopt/internal/entities"
)

// ErrNoAnimals indicates the store is empty so there is nothing to promote
var ErrNoAnimals = errors.New("no animals available for notification")

// AnimalPicker is the slice of the animal repository the picker needs.
type AnimalPicker interface {
	Random() (*entities.Animal, error)
}

// Notification is one adoption reminder ready for delivery.
type Notification struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	AnimalID   string `json:"animal_id"`
	AnimalName string `json:"animal_name"`
}

// PickRandom selects a random stored animal and builds its reminder.
func PickRandom(store AnimalPicker) (*Notification, error) {
	animal, err := store.Random()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoAnimals
		}
		return nil, fmt.Errorf("failed to pick animal: %w", err)
	}

	body := fmt.Sprintf("%s is waiting for a home!", animal.Name)
	if animal.City != "" {
		body = fmt.Sprintf("%s in %s is waiting for a home!", animal.Name, animal.City)
	}

	return &Notification{
		Title:      "Adopt a friend today",
		Body:       body,
		AnimalID:   animal.ExternalID,
		AnimalName: animal.Name,
	}, nil
}
