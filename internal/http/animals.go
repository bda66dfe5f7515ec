package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/pawdopt/internal/entities"
	"github.com/mrlokans/pawdopt/internal/filter"
	"github.com/mrlokans/pawdopt/internal/geo"
	"github.com/mrlokans/pawdopt/internal/sync"
)

// AnimalsStore defines database operations for animal listing.
type AnimalsStore interface {
	List(species string) ([]entities.Animal, error)
	GetByExternalID(externalID string) (*entities.Animal, error)
	Count(species string) (int64, error)
	Random() (*entities.Animal, error)
}

type AnimalsController struct {
	store   AnimalsStore
	engine  *sync.Engine
	filters *filter.Manager
}

func NewAnimalsController(store AnimalsStore, engine *sync.Engine, filters *filter.Manager) *AnimalsController {
	return &AnimalsController{
		store:   store,
		engine:  engine,
		filters: filters,
	}
}

// ListAnimals returns the animals for a species scope, syncing first when the
// cache is stale. The active filter selection is applied to the result. On a
// total sync failure the cached animals are still returned, with the error
// attached, so the list never goes blank.
// GET /api/animals?species=dog&refresh=true
func (ac *AnimalsController) ListAnimals(c *gin.Context) {
	species := c.Query("species")
	force := c.Query("refresh") == "true"

	var syncFailure string
	result, err := ac.engine.Sync(c.Request.Context(), sync.Scope{
		Species:      species,
		ForceRefresh: force,
	})
	if err != nil {
		syncFailure = err.Error()
		animals, listErr := ac.store.List(species)
		if listErr != nil {
			respondInternalError(c, listErr, "list animals")
			return
		}
		result = &sync.Result{Animals: animals}
	}

	selection := ac.filters.Snapshot()
	filtered := filter.Apply(result.Animals, selection)

	response := gin.H{
		"animals":        filtered,
		"total":          len(result.Animals),
		"filtered_total": len(filtered),
		"active_filters": selection.ActiveCount(),
	}
	if result.Source != "" {
		response["source"] = result.Source
	}
	if result.Skipped != sync.SkipNone {
		response["skipped"] = string(result.Skipped)
	}
	if last := ac.engine.LastFetchedAt(species); !last.IsZero() {
		response["last_fetched_at"] = last.Format(time.RFC3339)
	}
	if syncFailure != "" {
		response["sync_error"] = syncFailure
	}

	c.JSON(http.StatusOK, response)
}

// GetAnimal returns one animal by its external ID.
// GET /api/animals/:id
func (ac *AnimalsController) GetAnimal(c *gin.Context) {
	id, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	animal, err := ac.store.GetByExternalID(id)
	if err != nil {
		respondNotFound(c, "animal")
		return
	}

	c.JSON(http.StatusOK, animal)
}

// GetRandomAnimal returns one random stored animal.
// GET /api/animals/random
func (ac *AnimalsController) GetRandomAnimal(c *gin.Context) {
	animal, err := ac.store.Random()
	if err != nil {
		respondNotFound(c, "animal")
		return
	}

	c.JSON(http.StatusOK, animal)
}

// AnimalLocation is one map pin for the locations view.
type AnimalLocation struct {
	AnimalID  string  `json:"animal_id"`
	Name      string  `json:"name"`
	Species   string  `json:"species"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GetLocations returns map coordinates for animals whose city is known.
// Animals in unrecognized cities are omitted rather than mapped wrongly.
// GET /api/animals/locations?species=dog
func (ac *AnimalsController) GetLocations(c *gin.Context) {
	species := c.Query("species")

	animals, err := ac.store.List(species)
	if err != nil {
		respondInternalError(c, err, "list animal locations")
		return
	}

	locations := make([]AnimalLocation, 0, len(animals))
	for _, animal := range animals {
		point, ok := geo.Lookup(animal.City)
		if !ok {
			continue
		}
		locations = append(locations, AnimalLocation{
			AnimalID:  animal.ExternalID,
			Name:      animal.Name,
			Species:   animal.Species,
			City:      animal.City,
			Latitude:  point.Latitude,
			Longitude: point.Longitude,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"locations": locations,
		"total":     len(locations),
	})
}
