// Package animals provides database operations for the local animal store.
//
// The store holds exactly one row per external pet identifier. Sync batches
// go through UpsertBatch, which runs in a single transaction so an aborted
// sync leaves no partial state behind.
//
// # Usage
//
//	repo := animals.NewRepository(db)
//	list, err := repo.List("dog")
package animals

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/pawdopt/internal/entities"
)

// Repository handles all animal database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new animals repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns animals for a species sorted by name. An empty species
// returns every animal. Stored species are always lowercase, so the
// argument is clamped before matching.
func (r *Repository) List(species string) ([]entities.Animal, error) {
	var result []entities.Animal
	species = strings.ToLower(strings.TrimSpace(species))
	query := r.db.Order("name ASC")
	if species != "" {
		query = query.Where("species = ?", species)
	}
	err := query.Find(&result).Error
	return result, err
}

// GetByExternalID retrieves a single animal by its external pet identifier.
func (r *Repository) GetByExternalID(externalID string) (*entities.Animal, error) {
	var animal entities.Animal
	err := r.db.Where("external_id = ?", externalID).First(&animal).Error
	if err != nil {
		return nil, err
	}
	return &animal, nil
}

// Count returns the number of stored animals for a species ("" = all).
func (r *Repository) Count(species string) (int64, error) {
	var count int64
	species = strings.ToLower(strings.TrimSpace(species))
	query := r.db.Model(&entities.Animal{})
	if species != "" {
		query = query.Where("species = ?", species)
	}
	err := query.Count(&count).Error
	return count, err
}

// Random returns one random animal, used to populate the daily notification.
// Returns gorm.ErrRecordNotFound when the store is empty.
func (r *Repository) Random() (*entities.Animal, error) {
	var animal entities.Animal
	err := r.db.Order("RANDOM()").First(&animal).Error
	if err != nil {
		return nil, err
	}
	return &animal, nil
}

// SetFollowing updates the following flag of a single animal and nothing else.
// Returns gorm.ErrRecordNotFound when no row matches the external ID.
func (r *Repository) SetFollowing(externalID string, following bool) error {
	result := r.db.Model(&entities.Animal{}).
		Where("external_id = ?", externalID).
		Update("is_following", following)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAll removes every animal from the store.
func (r *Repository) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&entities.Animal{}).Error
}

// UpsertBatch inserts or updates a batch of animals keyed by external ID
// inside one transaction. Descriptive fields are overwritten in batch order;
// is_following is never touched, it belongs to the follow service. The
// context aborts the transaction, so a cancelled sync commits nothing.
func (r *Repository) UpsertBatch(ctx context.Context, batch []entities.Animal) (inserted, updated int, err error) {
	if len(batch) == 0 {
		return 0, 0, nil
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, incoming := range batch {
			var existing entities.Animal
			findErr := tx.Where("external_id = ?", incoming.ExternalID).First(&existing).Error

			if errors.Is(findErr, gorm.ErrRecordNotFound) {
				record := incoming
				record.ID = 0
				record.IsFollowing = false
				if createErr := tx.Create(&record).Error; createErr != nil {
					return fmt.Errorf("failed to insert animal %s: %w", incoming.ExternalID, createErr)
				}
				inserted++
				continue
			}
			if findErr != nil {
				return fmt.Errorf("failed to look up animal %s: %w", incoming.ExternalID, findErr)
			}

			updates := map[string]any{
				"name":            incoming.Name,
				"species":         incoming.Species,
				"sex":             incoming.Sex,
				"size":            incoming.Size,
				"age":             incoming.Age,
				"primary_breed":   incoming.PrimaryBreed,
				"secondary_breed": incoming.SecondaryBreed,
				"color":           incoming.Color,
				"city":            incoming.City,
				"image_url":       incoming.ImageURL,
				"last_modified":   incoming.LastModified,
			}
			if updateErr := tx.Model(&existing).Updates(updates).Error; updateErr != nil {
				return fmt.Errorf("failed to update animal %s: %w", incoming.ExternalID, updateErr)
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return inserted, updated, nil
}
