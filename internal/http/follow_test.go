package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/pawdopt/internal/database"
	"github.com/mrlokans/pawdopt/internal/database/animals"
	"github.com/mrlokans/pawdopt/internal/entities"
	"github.com/mrlokans/pawdopt/internal/follow"
)

func setupFollowTest(t *testing.T) (*animals.Repository, *gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_follow_api_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	repo := animals.NewRepository(db.DB)
	controller := NewFollowController(follow.NewService(repo), repo)

	router := gin.New()
	router.GET("/api/animals/following", controller.ListFollowed)
	router.POST("/api/animals/:id/follow", controller.FollowAnimal)
	router.DELETE("/api/animals/:id/follow", controller.UnfollowAnimal)
	router.POST("/api/animals/:id/follow/toggle", controller.ToggleFollow)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return repo, router, cleanup
}

func seedAnimal(t *testing.T, repo *animals.Repository, externalID, name string) {
	t.Helper()
	_, _, err := repo.UpsertBatch(context.Background(), []entities.Animal{
		{ExternalID: externalID, Name: name, Species: "dog", LastModified: time.Now()},
	})
	require.NoError(t, err)
}

func TestFollowController_FollowAndUnfollow(t *testing.T) {
	repo, router, cleanup := setupFollowTest(t)
	defer cleanup()

	seedAnimal(t, repo, "a-1", "Max")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/animals/a-1/follow", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := repo.GetByExternalID("a-1")
	require.NoError(t, err)
	assert.True(t, stored.IsFollowing)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("DELETE", "/api/animals/a-1/follow", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err = repo.GetByExternalID("a-1")
	require.NoError(t, err)
	assert.False(t, stored.IsFollowing)
}

func TestFollowController_Toggle(t *testing.T) {
	repo, router, cleanup := setupFollowTest(t)
	defer cleanup()

	seedAnimal(t, repo, "a-1", "Max")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/animals/a-1/follow/toggle", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Animal entities.Animal `json:"animal"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Animal.IsFollowing)
}

func TestFollowController_UnknownAnimal(t *testing.T) {
	_, router, cleanup := setupFollowTest(t)
	defer cleanup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/animals/missing/follow", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFollowController_ListFollowed(t *testing.T) {
	repo, router, cleanup := setupFollowTest(t)
	defer cleanup()

	seedAnimal(t, repo, "a-1", "Max")
	seedAnimal(t, repo, "a-2", "Rocky")
	require.NoError(t, repo.SetFollowing("a-2", true))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/animals/following", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Animals []entities.Animal `json:"animals"`
		Total   int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, 1, response.Total)
	assert.Equal(t, "Rocky", response.Animals[0].Name)
}
