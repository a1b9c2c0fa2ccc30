package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readandlead/internal/services"
)

// TestAgencyTrips verifies the curated catalog is served complete, with every
// entry carrying the fields the frontend cards render.
func TestAgencyTrips(t *testing.T) {
	trips := services.AgencyTrips()
	require.Len(t, trips, 2)

	assert.Equal(t, "hana-han-kang", trips[0].ID)
	assert.Equal(t, "mode-jeju-literature", trips[1].ID)

	for _, trip := range trips {
		assert.NotEmpty(t, trip.Title)
		assert.NotEmpty(t, trip.Operator)
		assert.NotEmpty(t, trip.Link)
		assert.NotEmpty(t, trip.Intro)
		assert.NotEmpty(t, trip.Itinerary)
	}
}
