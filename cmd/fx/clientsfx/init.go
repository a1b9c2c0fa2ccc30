package clientsfx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"readandlead/pkg/clients"
)

var Module = fx.Provide(
	provideDraftClient, providePlacesClient, provideBookContextClient)

func provideDraftClient() clients.DraftClientInterface {
	provider := os.Getenv("DRAFT_PROVIDER")
	apiKey := os.Getenv("OPENAI_API_KEY")
	if provider == "gemini" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	client, err := clients.NewDraftClient(provider, apiKey, os.Getenv("DRAFT_MODEL"))
	if err != nil {
		// The plan endpoint still works through the fallback template.
		log.Printf("WARN draft client unavailable: %v", err)
		return clients.NewOpenAIDraftClient("")
	}
	return client
}

func providePlacesClient() clients.PlacesClientInterface {
	return clients.NewKakaoPlacesClient(os.Getenv("KAKAO_REST_KEY"))
}

func provideBookContextClient() clients.BookContextClientInterface {
	return clients.NewBookContextClient()
}
