package services

import (
	"context"

	"readandlead/internal/models/response_models"
	"readandlead/pkg/clients"
	"readandlead/pkg/utils"
)

// DiscoveryServiceInterface fronts the public culture, performance, tourism
// and library feeds. Payloads stay close to the upstream shapes so the
// frontend parsers keep working.
type DiscoveryServiceInterface interface {
	CultureNearby(ctx context.Context, lat, lng, radiusKm float64, from, to, keyword string) map[string]interface{}
	Performances(ctx context.Context, city, from, to string, rows, page int, gugunCode string) ([]clients.Performance, error)
	TourSearch(ctx context.Context, keyword string, numOfRows, pageNo int) (map[string]interface{}, error)
	BookRecommendations(ctx context.Context, startDate, endDate string, drCode, start, end int) ([]clients.BookPick, error)
	AgencyTrips() []response_models.AgencyTrip
}

type DiscoveryService struct {
	culture *clients.CultureClient
	kopis   *clients.KopisClient
	tour    *clients.TourClient
	library *clients.LibraryClient
}

func NewDiscoveryService(
	culture *clients.CultureClient,
	kopis *clients.KopisClient,
	tour *clients.TourClient,
	library *clients.LibraryClient,
) DiscoveryServiceInterface {
	return &DiscoveryService{
		culture: culture,
		kopis:   kopis,
		tour:    tour,
		library: library,
	}
}

func (d *DiscoveryService) CultureNearby(ctx context.Context, lat, lng, radiusKm float64, from, to, keyword string) map[string]interface{} {
	return d.culture.Nearby(ctx, lat, lng, radiusKm, from, to, keyword)
}

func (d *DiscoveryService) Performances(ctx context.Context, city, from, to string, rows, page int, gugunCode string) ([]clients.Performance, error) {
	if rows <= 0 || rows > 100 {
		rows = 20
	}
	if page <= 0 {
		page = 1
	}
	return d.kopis.Performances(ctx, city, from, to, rows, page, gugunCode)
}

func (d *DiscoveryService) TourSearch(ctx context.Context, keyword string, numOfRows, pageNo int) (map[string]interface{}, error) {
	if keyword == "" {
		return nil, utils.ErrInvalidInput
	}
	if numOfRows <= 0 || numOfRows > 100 {
		numOfRows = 10
	}
	if pageNo <= 0 {
		pageNo = 1
	}
	return d.tour.SearchKeyword(ctx, keyword, numOfRows, pageNo)
}

func (d *DiscoveryService) BookRecommendations(ctx context.Context, startDate, endDate string, drCode, start, end int) ([]clients.BookPick, error) {
	if drCode == 0 {
		drCode = 11
	}
	if start <= 0 {
		start = 1
	}
	if end <= 0 || end-start > 99 {
		end = start + 19
	}
	return d.library.Recommendations(ctx, startDate, endDate, drCode, start, end)
}

func (d *DiscoveryService) AgencyTrips() []response_models.AgencyTrip {
	return AgencyTrips()
}
