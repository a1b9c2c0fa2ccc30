package response_models

// PlaceQuery is the draft-stage search request the LLM writes per stop.
// It only lives between drafting and place resolution; it is stripped from
// every stop before the plan is returned.
type PlaceQuery struct {
	City       string   `json:"city,omitempty"`
	Category   string   `json:"category,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`
	MustBeReal bool     `json:"must_be_real,omitempty"`

	// Hints injected by the normalizer right before resolution.
	TitleHint  string `json:"-"`
	ThemeHint  string `json:"-"`
	GlobalHint string `json:"-"`
}

// StopItem is one itinerary waypoint. Lat/Lng are pointers so "not geocoded"
// stays distinguishable from (0, 0).
type StopItem struct {
	Time    string   `json:"time,omitempty"`
	Title   string   `json:"title"`
	Place   string   `json:"place,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
	Notes   string   `json:"notes,omitempty"`
	Mission string   `json:"mission,omitempty"`

	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	URL     string `json:"url,omitempty"`
	Hours   string `json:"hours,omitempty"`
	Source  string `json:"source,omitempty"`
	PlaceID string `json:"place_id,omitempty"`

	// Draft-only working state, removed by the resolver.
	PlaceQuery *PlaceQuery `json:"place_query,omitempty"`
}

type DayPlan struct {
	Day   int        `json:"day"`
	Theme string     `json:"theme,omitempty"`
	Date  string     `json:"date,omitempty"`
	Stops []StopItem `json:"stops"`
}

// TravelPlan is the orchestrator output. Degraded marks plans built from the
// static fallback template instead of a model draft.
type TravelPlan struct {
	Summary  string    `json:"summary"`
	Days     []DayPlan `json:"days"`
	Degraded bool      `json:"degraded"`
}
