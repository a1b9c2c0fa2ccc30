package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"readandlead/internal/models/response_models"
	"readandlead/pkg/clients"
)

type PlanServiceInterface interface {
	GeneratePlan(ctx context.Context, in clients.PlanInput) (response_models.TravelPlan, error)
	ResolveStop(ctx context.Context, stop response_models.StopItem, themeHint, globalHint string) response_models.StopItem
	SequenceStops(stops []response_models.StopItem) []response_models.StopItem
}

type PlanService struct {
	draftClient clients.DraftClientInterface
	placeClient clients.PlacesClientInterface
	bookClient  clients.BookContextClientInterface
}

func NewPlanService(
	draftClient clients.DraftClientInterface,
	placeClient clients.PlacesClientInterface,
	bookClient clients.BookContextClientInterface,
) PlanServiceInterface {
	return &PlanService{
		draftClient: draftClient,
		placeClient: placeClient,
		bookClient:  bookClient,
	}
}

// GeneratePlan drafts an itinerary, resolves every stop against places
// search, and orders each day's stops. It never fails the request: a failed
// draft falls back to the static template, which goes through the exact same
// resolution and ordering, marked degraded.
func (p *PlanService) GeneratePlan(ctx context.Context, in clients.PlanInput) (response_models.TravelPlan, error) {
	bookContext := ""
	if p.bookClient != nil {
		bookContext = p.bookClient.FetchBookContext(ctx, in.BookTitle)
	}
	hints := clients.ExtractBackgroundHints(bookContext)
	if hints == "" {
		hints = GuessCityFromBook(in.BookTitle, "", "")
	}
	if hints == "" {
		hints = "서울"
	}

	raw, err := p.draftClient.DraftPlan(ctx, in, bookContext, hints)
	if err != nil {
		log.Printf("DEBUG draft failed, using fallback: %v", err)
		return p.finishPlan(ctx, fallbackPlan(in), in, true), nil
	}

	coerced := CoercePlanText(raw)
	plan := response_models.TravelPlan{Summary: coerced.Summary}
	if plan.Summary == "" {
		plan.Summary = fmt.Sprintf("%s 기반 여행 요약", in.BookTitle)
	}

	for idx, rawDay := range coerced.Days {
		day, ok := rawDay.(map[string]interface{})
		if !ok {
			continue
		}
		dayOut := response_models.DayPlan{
			Day:   asInt(day["day"], idx+1),
			Theme: asString(day["theme"]),
			Date:  asString(day["date"]),
			Stops: []response_models.StopItem{},
		}

		rawStops, _ := day["stops"].([]interface{})
		for _, rawStop := range rawStops {
			sm, ok := rawStop.(map[string]interface{})
			if !ok {
				continue
			}
			stop := decodeStop(sm)
			themeHint := dayOut.Theme
			if themeHint == "" {
				themeHint = in.Theme
			}
			dayOut.Stops = append(dayOut.Stops, p.ResolveStop(ctx, stop, themeHint, in.BookTitle))
		}

		dayOut.Stops = SortStopsByDistance(dayOut.Stops)
		plan.Days = append(plan.Days, dayOut)
	}

	if plan.Days == nil {
		plan.Days = []response_models.DayPlan{}
	}
	return plan, nil
}

// finishPlan runs the fallback template through stop resolution and ordering
// so degraded plans still carry real places.
func (p *PlanService) finishPlan(ctx context.Context, plan response_models.TravelPlan, in clients.PlanInput, degraded bool) response_models.TravelPlan {
	for i := range plan.Days {
		day := &plan.Days[i]
		if day.Day == 0 {
			day.Day = i + 1
		}
		themeHint := day.Theme
		if themeHint == "" {
			themeHint = in.Theme
		}
		for j, stop := range day.Stops {
			day.Stops[j] = p.ResolveStop(ctx, stop, themeHint, in.BookTitle)
		}
		day.Stops = SortStopsByDistance(day.Stops)
	}
	if plan.Summary == "" {
		plan.Summary = fmt.Sprintf("%s 기반 여행 요약", in.BookTitle)
	}
	if plan.Days == nil {
		plan.Days = []response_models.DayPlan{}
	}
	plan.Degraded = degraded
	return plan
}

// ResolveStop normalizes the stop's place query and tries up to three
// searches: category plus keywords scoped to the city, then the stop title
// scoped to the city, then the bare title. The first candidate wins. The
// place query never survives into the result.
func (p *PlanService) ResolveStop(ctx context.Context, stop response_models.StopItem, themeHint, globalHint string) response_models.StopItem {
	if stop.Title == "" {
		stop.Title = "코스"
	}

	pq := response_models.PlaceQuery{}
	if stop.PlaceQuery != nil {
		pq = *stop.PlaceQuery
	}
	pq.TitleHint = stop.Title
	pq.ThemeHint = themeHint
	pq.GlobalHint = globalHint
	pq = NormalizePlaceQuery(pq)

	baseQuery := strings.TrimSpace(pq.Category + " " + strings.Join(pq.Keywords, " "))
	if baseQuery == "" {
		baseQuery = pq.Category
	}
	if baseQuery == "" {
		baseQuery = stop.Title
	}

	cands := p.searchPlaces(ctx, baseQuery, pq.City)
	if len(cands) == 0 && strings.TrimSpace(stop.Title) != "" {
		cands = p.searchPlaces(ctx, strings.TrimSpace(stop.Title), pq.City)
	}
	if len(cands) == 0 && strings.TrimSpace(stop.Title) != "" {
		cands = p.searchPlaces(ctx, strings.TrimSpace(stop.Title), "")
	}

	if len(cands) > 0 {
		best := cands[0]
		stop.Place = best.Name
		stop.Address = best.Address
		stop.Lat = best.Lat
		stop.Lng = best.Lng
		stop.Phone = best.Phone
		stop.URL = best.URL
		stop.Hours = best.Hours
		stop.Source = best.Source
		stop.PlaceID = best.PlaceID
	}

	stop.PlaceQuery = nil
	return stop
}

func (p *PlanService) searchPlaces(ctx context.Context, query, city string) []clients.PlaceCandidate {
	if p.placeClient == nil {
		return nil
	}
	cands, err := p.placeClient.SearchKeyword(ctx, query, city)
	if err != nil {
		log.Printf("WARN place search error: %v", err)
		return nil
	}
	return cands
}

// SequenceStops exposes the day-level ordering for standalone use.
func (p *PlanService) SequenceStops(stops []response_models.StopItem) []response_models.StopItem {
	return SortStopsByDistance(stops)
}

// decodeStop builds a stop from a loosely typed draft map, ignoring any field
// with the wrong shape.
func decodeStop(m map[string]interface{}) response_models.StopItem {
	stop := response_models.StopItem{
		Time:    asString(m["time"]),
		Title:   asString(m["title"]),
		Notes:   asString(m["notes"]),
		Mission: asString(m["mission"]),
	}
	if pqm, ok := m["place_query"].(map[string]interface{}); ok {
		mustBeReal, _ := pqm["must_be_real"].(bool)
		stop.PlaceQuery = &response_models.PlaceQuery{
			City:       asString(pqm["city"]),
			Category:   asString(pqm["category"]),
			Keywords:   asStringSlice(pqm["keywords"]),
			MustBeReal: mustBeReal,
		}
	}
	return stop
}
