package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	point, ok := Lookup("Porto")
	require.True(t, ok)
	assert.InDelta(t, 41.1579, point.Latitude, 0.001)
	assert.InDelta(t, -8.6291, point.Longitude, 0.001)

	// Case and surrounding whitespace do not matter
	_, ok = Lookup("  LISBOA ")
	assert.True(t, ok)

	// Alias resolves to the same city
	lisboa, _ := Lookup("lisboa")
	lisbon, _ := Lookup("lisbon")
	assert.Equal(t, lisboa, lisbon)

	_, ok = Lookup("Atlantis")
	assert.False(t, ok)

	_, ok = Lookup("")
	assert.False(t, ok)
}
