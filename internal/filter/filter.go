// Package filter narrows animal lists by category selections. Values within
// one category are alternatives (any match passes); categories combine
// conjunctively (every selected category must match).
package filter

import (
	"strings"

	"github.com/mrlokans/pawdopt/internal/entities"
)

// Selection holds the active choices per category. An empty category does not
// constrain the result.
type Selection struct {
	Species       []string `json:"species"`
	Breeds        []string `json:"breeds"`
	Genders       []string `json:"genders"`
	Ages          []string `json:"ages"`
	FollowingOnly bool     `json:"following_only"`
}

// IsEmpty reports whether the selection constrains nothing.
func (s Selection) IsEmpty() bool {
	return len(s.Species) == 0 &&
		len(s.Breeds) == 0 &&
		len(s.Genders) == 0 &&
		len(s.Ages) == 0 &&
		!s.FollowingOnly
}

// ActiveCount returns the number of categories that constrain the result.
func (s Selection) ActiveCount() int {
	count := 0
	if len(s.Species) > 0 {
		count++
	}
	if len(s.Breeds) > 0 {
		count++
	}
	if len(s.Genders) > 0 {
		count++
	}
	if len(s.Ages) > 0 {
		count++
	}
	if s.FollowingOnly {
		count++
	}
	return count
}

// Apply returns the animals matching the selection, preserving input order.
// The input slice is never modified. An animal missing the field a category
// filters on is excluded by that category.
func Apply(animals []entities.Animal, selection Selection) []entities.Animal {
	if selection.IsEmpty() {
		return animals
	}

	result := make([]entities.Animal, 0, len(animals))
	for _, animal := range animals {
		if matches(animal, selection) {
			result = append(result, animal)
		}
	}
	return result
}

func matches(animal entities.Animal, selection Selection) bool {
	if selection.FollowingOnly && !animal.IsFollowing {
		return false
	}
	if !matchesAny(animal.Species, selection.Species) {
		return false
	}
	if !matchesBreed(animal, selection.Breeds) {
		return false
	}
	if !matchesAny(animal.Sex, selection.Genders) {
		return false
	}
	if !matchesAny(animal.Age, selection.Ages) {
		return false
	}
	return true
}

// matchesAny is the within-category disjunction. An empty wanted list means
// the category is inactive and everything passes; an empty field value on an
// active category never matches.
func matchesAny(value string, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	if value == "" {
		return false
	}
	for _, candidate := range wanted {
		if strings.EqualFold(value, candidate) {
			return true
		}
	}
	return false
}

// matchesBreed checks both breed fields so a secondary-breed match counts.
func matchesBreed(animal entities.Animal, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	return matchesAny(animal.PrimaryBreed, wanted) ||
		(animal.SecondaryBreed != "" && matchesAny(animal.SecondaryBreed, wanted))
}
