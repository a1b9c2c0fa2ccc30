package services

import (
	"math"

	"readandlead/internal/models/response_models"
)

const farApart = 9e9

func stopDistance(a, b response_models.StopItem) float64 {
	if a.Lat == nil || a.Lng == nil || b.Lat == nil || b.Lng == nil {
		return farApart
	}
	return math.Hypot(*a.Lat-*b.Lat, *a.Lng-*b.Lng)
}

// SortStopsByDistance orders a day's stops by greedy nearest neighbor over
// raw lat/lng deltas. Geocoded stops come first in visit order starting from
// the first geocoded stop; stops without coordinates keep their input order
// at the tail.
func SortStopsByDistance(stops []response_models.StopItem) []response_models.StopItem {
	withGeo := make([]int, 0, len(stops))
	for i, s := range stops {
		if s.Lat != nil && s.Lng != nil {
			withGeo = append(withGeo, i)
		}
	}
	if len(withGeo) == 0 {
		return stops
	}

	path := []int{withGeo[0]}
	remaining := append([]int(nil), withGeo[1:]...)
	for len(remaining) > 0 {
		last := stops[path[len(path)-1]]
		bestIdx := 0
		bestDist := stopDistance(last, stops[remaining[0]])
		for j := 1; j < len(remaining); j++ {
			if d := stopDistance(last, stops[remaining[j]]); d < bestDist {
				bestDist = d
				bestIdx = j
			}
		}
		path = append(path, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	placed := make(map[int]struct{}, len(path))
	out := make([]response_models.StopItem, 0, len(stops))
	for _, i := range path {
		placed[i] = struct{}{}
		out = append(out, stops[i])
	}
	for i, s := range stops {
		if _, ok := placed[i]; !ok {
			out = append(out, s)
		}
	}
	return out
}
