package request_models

type UpsertPlaceRequest struct {
	Source     string   `json:"source" binding:"required"`
	ExternalID string   `json:"externalId" binding:"required"`
	Name       string   `json:"name" binding:"required"`
	Address    string   `json:"address"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
}
