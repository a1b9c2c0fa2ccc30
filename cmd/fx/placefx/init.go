package placefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"readandlead/internal/repositories"
	"readandlead/internal/services"
	"readandlead/pkg/clients"
)

var Module = fx.Provide(
	providePlaceService, providePlaceRepo)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func providePlaceService(placeRepo repositories.PlaceRepository, placeClient clients.PlacesClientInterface) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo, placeClient)
}
