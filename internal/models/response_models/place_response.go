package response_models

type SavedPlaceResponse struct {
	ID         string   `json:"id"`
	Source     string   `json:"source"`
	ExternalID string   `json:"external_id"`
	Name       string   `json:"name"`
	Address    string   `json:"address,omitempty"`
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`
}

// PlaceHit is one keyword-search result from the places provider.
type PlaceHit struct {
	Name    string   `json:"name"`
	Address string   `json:"address,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
	Phone   string   `json:"phone,omitempty"`
	URL     string   `json:"url,omitempty"`
	Source  string   `json:"source"`
	PlaceID string   `json:"place_id,omitempty"`
}
