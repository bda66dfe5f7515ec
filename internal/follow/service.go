// Package follow manages the per-animal following flag. The flag lives in
// the same row as the synced attributes but is owned exclusively by this
// service; sync batches never write it.
package follow

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/pawdopt/internal/entities"
)

// ErrAnimalNotFound indicates the external ID matches no stored animal
var ErrAnimalNotFound = errors.New("animal not found")

// Store is the slice of the animal repository the service needs.
type Store interface {
	GetByExternalID(externalID string) (*entities.Animal, error)
	SetFollowing(externalID string, following bool) error
}

// Service applies follow state changes.
type Service struct {
	store Store
}

// NewService creates a new follow service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// SetFollow sets the flag to an explicit value and returns the updated animal.
func (s *Service) SetFollow(externalID string, following bool) (*entities.Animal, error) {
	if err := s.store.SetFollowing(externalID, following); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimalNotFound
		}
		return nil, fmt.Errorf("failed to update follow state: %w", err)
	}
	return s.get(externalID)
}

// ToggleFollow flips the flag and returns the updated animal.
func (s *Service) ToggleFollow(externalID string) (*entities.Animal, error) {
	animal, err := s.get(externalID)
	if err != nil {
		return nil, err
	}
	return s.SetFollow(externalID, !animal.IsFollowing)
}

func (s *Service) get(externalID string) (*entities.Animal, error) {
	animal, err := s.store.GetByExternalID(externalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimalNotFound
		}
		return nil, fmt.Errorf("failed to load animal: %w", err)
	}
	return animal, nil
}
