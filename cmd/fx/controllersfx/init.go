package controllersfx

import (
	"go.uber.org/fx"

	"readandlead/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAccountController,
	controllers.NewPostController,
	controllers.NewPlaceController,
	controllers.NewTripController,
	controllers.NewDiscoveryController,
)
