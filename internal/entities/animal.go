package entities

import (
	"time"
)

// Species values are always stored lowercase. "unknown" is used when the
// remote payload gives no species and the heuristic cannot classify one.
const (
	SpeciesDog     = "dog"
	SpeciesCat     = "cat"
	SpeciesRabbit  = "rabbit"
	SpeciesBird    = "bird"
	SpeciesUnknown = "unknown"
)

// Animal is the canonical local record mirrored from the remote pet-search
// sources. Exactly one row exists per ExternalID; syncs upsert descriptive
// fields and never touch IsFollowing, which is owned by the follow service.
type Animal struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ExternalID string `gorm:"uniqueIndex;size:256" json:"external_id"`

	Name           string `gorm:"index;size:256" json:"name,omitempty"`
	Species        string `gorm:"index;size:50" json:"species"`
	Sex            string `gorm:"size:20" json:"sex,omitempty"`
	Size           string `gorm:"size:20" json:"size,omitempty"`
	Age            string `gorm:"size:50" json:"age,omitempty"`
	PrimaryBreed   string `gorm:"index;size:100" json:"primary_breed,omitempty"`
	SecondaryBreed string `gorm:"size:100" json:"secondary_breed,omitempty"`
	Color          string `gorm:"size:50" json:"color,omitempty"`
	City           string `gorm:"size:100" json:"city,omitempty"`
	ImageURL       string `gorm:"size:2048" json:"image_url,omitempty"`

	// LastModified is the payload-provided modification time when parseable,
	// otherwise the fetch time.
	LastModified time.Time `json:"last_modified"`

	// IsFollowing is the user's favourite flag. It survives re-syncs.
	IsFollowing bool `gorm:"default:false" json:"is_following"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Animal) TableName() string {
	return "animals"
}
