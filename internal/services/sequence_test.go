package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readandlead/internal/models/response_models"
	"readandlead/internal/services"
)

func geoStop(title string, lat, lng float64) response_models.StopItem {
	return response_models.StopItem{Title: title, Lat: &lat, Lng: &lng}
}

func titles(stops []response_models.StopItem) []string {
	out := make([]string, 0, len(stops))
	for _, s := range stops {
		out = append(out, s.Title)
	}
	return out
}

// TestSortStopsByDistance_GreedyPath verifies the route starts at the first
// geocoded stop and always walks to the nearest unvisited one.
func TestSortStopsByDistance_GreedyPath(t *testing.T) {
	stops := []response_models.StopItem{
		geoStop("출발", 37.570, 126.990),
		geoStop("멀리", 37.700, 127.200),
		geoStop("가까이", 37.572, 126.992),
	}

	got := services.SortStopsByDistance(stops)
	assert.Equal(t, []string{"출발", "가까이", "멀리"}, titles(got))
}

// TestSortStopsByDistance_NonGeocodedTail verifies stops without coordinates
// keep their input order after the geocoded route.
func TestSortStopsByDistance_NonGeocodedTail(t *testing.T) {
	stops := []response_models.StopItem{
		{Title: "주소 없음 1"},
		geoStop("B", 37.6, 127.0),
		{Title: "주소 없음 2"},
		geoStop("A", 37.5, 126.9),
	}

	got := services.SortStopsByDistance(stops)
	require.Len(t, got, 4)
	assert.Equal(t, []string{"B", "A", "주소 없음 1", "주소 없음 2"}, titles(got))
}

// TestSortStopsByDistance_NoCoordinates verifies an all-ungeocoded day keeps
// its input order.
func TestSortStopsByDistance_NoCoordinates(t *testing.T) {
	stops := []response_models.StopItem{
		{Title: "하나"}, {Title: "둘"}, {Title: "셋"},
	}

	got := services.SortStopsByDistance(stops)
	assert.Equal(t, []string{"하나", "둘", "셋"}, titles(got))
}

// TestSortStopsByDistance_Empty verifies the trivial cases pass through.
func TestSortStopsByDistance_Empty(t *testing.T) {
	assert.Empty(t, services.SortStopsByDistance(nil))

	one := []response_models.StopItem{geoStop("혼자", 37.5, 127.0)}
	assert.Equal(t, []string{"혼자"}, titles(services.SortStopsByDistance(one)))
}
