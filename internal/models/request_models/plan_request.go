package request_models

import "readandlead/internal/models/response_models"

type PlanRequest struct {
	BookTitle string `json:"bookTitle" binding:"required"`
	Travelers int    `json:"travelers"`
	Days      int    `json:"days" binding:"required,min=1,max=14"`
	Theme     string `json:"theme"`
}

type ResolveStopRequest struct {
	Stop       response_models.StopItem `json:"stop" binding:"required"`
	ThemeHint  string                   `json:"theme_hint"`
	GlobalHint string                   `json:"global_hint"`
}

type SequenceStopsRequest struct {
	Stops []response_models.StopItem `json:"stops" binding:"required"`
}
