package response_models

// AgencyTrip is one curated package tour from a partner agency. The catalog
// is editorial content, maintained in code until an agency feed exists.
type AgencyTrip struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Operator   string   `json:"operator"`
	Phone      string   `json:"phone"`
	Link       string   `json:"link"`
	Cover      string   `json:"cover"`
	Intro      string   `json:"intro"`
	AuthorNote string   `json:"author_note"`
	Itinerary  []string `json:"itinerary"`
}
