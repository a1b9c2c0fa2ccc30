package discoveryfx

import (
	"os"

	"go.uber.org/fx"

	"readandlead/internal/services"
	"readandlead/pkg/clients"
)

var Module = fx.Provide(
	provideDiscoveryService)

func provideDiscoveryService() services.DiscoveryServiceInterface {
	return services.NewDiscoveryService(
		clients.NewCultureClient(os.Getenv("CULTURE_API_KEY")),
		clients.NewKopisClient(os.Getenv("KOPIS_API_KEY")),
		clients.NewTourClient(os.Getenv("TOUR_API_KEY")),
		clients.NewLibraryClient(os.Getenv("NLK_API_KEY")),
	)
}
