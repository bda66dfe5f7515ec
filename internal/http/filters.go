package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/pawdopt/internal/filter"
)

type FiltersController struct {
	filters *filter.Manager
}

func NewFiltersController(filters *filter.Manager) *FiltersController {
	return &FiltersController{filters: filters}
}

// GetFilters returns the active filter selection.
// GET /api/filters
func (fc *FiltersController) GetFilters(c *gin.Context) {
	selection := fc.filters.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"selection":    selection,
		"active_count": selection.ActiveCount(),
	})
}

// UpdateFilters replaces the active filter selection.
// PUT /api/filters
func (fc *FiltersController) UpdateFilters(c *gin.Context) {
	var selection filter.Selection
	if err := c.ShouldBindJSON(&selection); err != nil {
		respondBadRequest(c, "invalid filter selection: "+err.Error())
		return
	}

	fc.filters.Replace(selection)

	c.JSON(http.StatusOK, gin.H{
		"message":      "filters updated",
		"selection":    selection,
		"active_count": selection.ActiveCount(),
	})
}

// ClearFilters resets the selection to empty.
// DELETE /api/filters
func (fc *FiltersController) ClearFilters(c *gin.Context) {
	fc.filters.Clear()
	respondSuccess(c, "filters cleared")
}
