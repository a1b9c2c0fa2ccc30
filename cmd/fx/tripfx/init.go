package tripfx

import (
	"go.uber.org/fx"

	"readandlead/internal/services"
	"readandlead/pkg/clients"
)

var Module = fx.Provide(
	providePlanService)

func providePlanService(
	draftClient clients.DraftClientInterface,
	placeClient clients.PlacesClientInterface,
	bookClient clients.BookContextClientInterface,
) services.PlanServiceInterface {
	return services.NewPlanService(draftClient, placeClient, bookClient)
}
