package services

import (
	"context"
	"log"

	"readandlead/internal/models/db_models"
	"readandlead/internal/models/request_models"
	"readandlead/internal/models/response_models"
	"readandlead/internal/repositories"
	"readandlead/pkg/clients"
	"readandlead/pkg/utils"

	"github.com/google/uuid"
)

type PlaceServiceInterface interface {
	UpsertPlace(ctx context.Context, userID string, request request_models.UpsertPlaceRequest) (response_models.SavedPlaceResponse, error)
	ListSavedPlaces(ctx context.Context, userID string) ([]response_models.SavedPlaceResponse, error)
	SearchPlaces(ctx context.Context, query, city string) ([]response_models.PlaceHit, error)
}

type PlaceService struct {
	placeRepo   repositories.PlaceRepository
	placeClient clients.PlacesClientInterface
}

func NewPlaceService(placeRepo repositories.PlaceRepository, placeClient clients.PlacesClientInterface) PlaceServiceInterface {
	return &PlaceService{
		placeRepo:   placeRepo,
		placeClient: placeClient,
	}
}

func (p *PlaceService) UpsertPlace(ctx context.Context, userID string, request request_models.UpsertPlaceRequest) (response_models.SavedPlaceResponse, error) {
	user, err := uuid.Parse(userID)
	if err != nil {
		return response_models.SavedPlaceResponse{}, utils.ErrInvalidInput
	}

	place := &db_models.SavedPlace{
		UserID:     user,
		Source:     request.Source,
		ExternalID: request.ExternalID,
		Name:       request.Name,
		Address:    request.Address,
		Lat:        request.Lat,
		Lng:        request.Lng,
	}
	if err := p.placeRepo.Upsert(ctx, place); err != nil {
		log.Printf("WARN place upsert failed: %v", err)
		return response_models.SavedPlaceResponse{}, utils.ErrDatabaseError
	}

	saved, err := p.placeRepo.FindByExternalID(ctx, userID, request.Source, request.ExternalID)
	if err != nil || saved == nil {
		return toSavedPlaceResponse(place), nil
	}
	return toSavedPlaceResponse(saved), nil
}

func (p *PlaceService) ListSavedPlaces(ctx context.Context, userID string) ([]response_models.SavedPlaceResponse, error) {
	places, err := p.placeRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.SavedPlaceResponse, 0, len(places))
	for i := range places {
		out = append(out, toSavedPlaceResponse(&places[i]))
	}
	return out, nil
}

func (p *PlaceService) SearchPlaces(ctx context.Context, query, city string) ([]response_models.PlaceHit, error) {
	if query == "" {
		return nil, utils.ErrInvalidInput
	}
	cands, err := p.placeClient.SearchKeyword(ctx, query, city)
	if err != nil {
		return nil, utils.ErrUpstreamError
	}
	out := make([]response_models.PlaceHit, 0, len(cands))
	for _, c := range cands {
		out = append(out, response_models.PlaceHit{
			Name:    c.Name,
			Address: c.Address,
			Lat:     c.Lat,
			Lng:     c.Lng,
			Phone:   c.Phone,
			URL:     c.URL,
			Source:  c.Source,
			PlaceID: c.PlaceID,
		})
	}
	return out, nil
}

func toSavedPlaceResponse(place *db_models.SavedPlace) response_models.SavedPlaceResponse {
	return response_models.SavedPlaceResponse{
		ID:         place.ID.String(),
		Source:     place.Source,
		ExternalID: place.ExternalID,
		Name:       place.Name,
		Address:    place.Address,
		Lat:        place.Lat,
		Lng:        place.Lng,
	}
}
