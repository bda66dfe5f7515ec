package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/pawdopt/internal/entities"
	"github.com/mrlokans/pawdopt/internal/follow"
)

// FollowService applies follow state changes.
type FollowService interface {
	SetFollow(externalID string, following bool) (*entities.Animal, error)
	ToggleFollow(externalID string) (*entities.Animal, error)
}

// FollowListStore lists animals so followed ones can be picked out.
type FollowListStore interface {
	List(species string) ([]entities.Animal, error)
}

type FollowController struct {
	service FollowService
	store   FollowListStore
}

func NewFollowController(service FollowService, store FollowListStore) *FollowController {
	return &FollowController{service: service, store: store}
}

// FollowAnimal marks an animal as followed.
// POST /api/animals/:id/follow
func (fc *FollowController) FollowAnimal(c *gin.Context) {
	fc.setFollow(c, true, "animal followed")
}

// UnfollowAnimal removes an animal from the followed set.
// DELETE /api/animals/:id/follow
func (fc *FollowController) UnfollowAnimal(c *gin.Context) {
	fc.setFollow(c, false, "animal unfollowed")
}

// ToggleFollow flips the follow state.
// POST /api/animals/:id/follow/toggle
func (fc *FollowController) ToggleFollow(c *gin.Context) {
	id, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	animal, err := fc.service.ToggleFollow(id)
	if err != nil {
		if errors.Is(err, follow.ErrAnimalNotFound) {
			respondNotFound(c, "animal")
			return
		}
		respondInternalError(c, err, "toggle follow")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "follow state toggled", "animal": animal})
}

// ListFollowed returns all followed animals.
// GET /api/animals/following
func (fc *FollowController) ListFollowed(c *gin.Context) {
	animals, err := fc.store.List(c.Query("species"))
	if err != nil {
		respondInternalError(c, err, "list followed animals")
		return
	}

	followed := make([]entities.Animal, 0)
	for _, animal := range animals {
		if animal.IsFollowing {
			followed = append(followed, animal)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"animals": followed,
		"total":   len(followed),
	})
}

func (fc *FollowController) setFollow(c *gin.Context, following bool, message string) {
	id, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	animal, err := fc.service.SetFollow(id, following)
	if err != nil {
		if errors.Is(err, follow.ErrAnimalNotFound) {
			respondNotFound(c, "animal")
			return
		}
		respondInternalError(c, err, "set follow state")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message, "animal": animal})
}
