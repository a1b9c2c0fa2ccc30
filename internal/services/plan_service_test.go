package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readandlead/internal/models/response_models"
	"readandlead/internal/services"
	"readandlead/pkg/clients"
)

type stubDraftClient struct {
	text string
	err  error
}

func (s *stubDraftClient) DraftPlan(ctx context.Context, in clients.PlanInput, bookContext, backgroundHints string) (string, error) {
	return s.text, s.err
}

type stubPlacesClient struct {
	cands []clients.PlaceCandidate
	err   error
	calls []string
}

func (s *stubPlacesClient) SearchKeyword(ctx context.Context, query, city string) ([]clients.PlaceCandidate, error) {
	s.calls = append(s.calls, city+"|"+query)
	return s.cands, s.err
}

type stubBookClient struct{}

func (stubBookClient) FetchBookContext(ctx context.Context, title string) string { return "" }

func floatPtr(f float64) *float64 { return &f }

// TestGeneratePlan_FallbackOnDraftError verifies a failed draft produces the
// static template, marked degraded, with the full day count and no leftover
// place queries.
func TestGeneratePlan_FallbackOnDraftError(t *testing.T) {
	svc := services.NewPlanService(
		&stubDraftClient{err: errors.New("provider down")},
		&stubPlacesClient{},
		stubBookClient{},
	)

	plan, err := svc.GeneratePlan(context.Background(), clients.PlanInput{
		BookTitle: "나의 라임 오렌지나무", Travelers: 2, Days: 2, Theme: "힐링",
	})
	require.NoError(t, err)

	assert.True(t, plan.Degraded)
	assert.Contains(t, plan.Summary, "나의 라임 오렌지나무")
	require.Len(t, plan.Days, 2)
	for i, day := range plan.Days {
		assert.Equal(t, i+1, day.Day)
		require.Len(t, day.Stops, 4)
		for _, stop := range day.Stops {
			assert.Nil(t, stop.PlaceQuery)
		}
	}
}

// TestGeneratePlan_ResolvesDraftStops verifies a parsed draft gets its stops
// resolved against the places search and the day ordered.
func TestGeneratePlan_ResolvesDraftStops(t *testing.T) {
	draft := `{"summary":"망원동 책 여행","days":[{"day":1,"theme":"산책","stops":[
		{"time":"10:00","title":"망원시장 구경","place_query":{"city":"서울 마포구","category":"시장","keywords":["망원시장"]}}
	]}]}`
	places := &stubPlacesClient{cands: []clients.PlaceCandidate{{
		Name: "망원시장", Address: "서울 마포구 포은로", Lat: floatPtr(37.556), Lng: floatPtr(126.906),
		Source: "kakao_places", PlaceID: "12345",
	}}}

	svc := services.NewPlanService(&stubDraftClient{text: draft}, places, stubBookClient{})

	plan, err := svc.GeneratePlan(context.Background(), clients.PlanInput{
		BookTitle: "망원동 브라더스", Days: 1, Theme: "산책",
	})
	require.NoError(t, err)

	assert.False(t, plan.Degraded)
	assert.Equal(t, "망원동 책 여행", plan.Summary)
	require.Len(t, plan.Days, 1)
	require.Len(t, plan.Days[0].Stops, 1)

	stop := plan.Days[0].Stops[0]
	assert.Equal(t, "망원시장", stop.Place)
	assert.Equal(t, "서울 마포구 포은로", stop.Address)
	require.NotNil(t, stop.Lat)
	assert.Nil(t, stop.PlaceQuery)
}

// TestGeneratePlan_UnparseableDraft verifies chatter that never parses gives
// an empty, non-degraded plan with the default summary.
func TestGeneratePlan_UnparseableDraft(t *testing.T) {
	svc := services.NewPlanService(
		&stubDraftClient{text: "죄송하지만 계획을 세울 수 없습니다."},
		&stubPlacesClient{},
		stubBookClient{},
	)

	plan, err := svc.GeneratePlan(context.Background(), clients.PlanInput{
		BookTitle: "토지", Days: 3, Theme: "문학",
	})
	require.NoError(t, err)

	assert.False(t, plan.Degraded)
	assert.Contains(t, plan.Summary, "토지")
	assert.Empty(t, plan.Days)
}

// TestGeneratePlan_MalformedDaysSkipped verifies days and stops of the wrong
// shape are dropped without losing the rest.
func TestGeneratePlan_MalformedDaysSkipped(t *testing.T) {
	draft := `{"summary":"요약","days":["잘못된 날",{"day":"하루","stops":[
		"잘못된 스톱",{"title":"정상 스톱"}
	]}]}`
	svc := services.NewPlanService(&stubDraftClient{text: draft}, &stubPlacesClient{}, stubBookClient{})

	plan, err := svc.GeneratePlan(context.Background(), clients.PlanInput{
		BookTitle: "책", Days: 1,
	})
	require.NoError(t, err)

	require.Len(t, plan.Days, 1)
	assert.Equal(t, 2, plan.Days[0].Day)
	require.Len(t, plan.Days[0].Stops, 1)
	assert.Equal(t, "정상 스톱", plan.Days[0].Stops[0].Title)
}

// TestResolveStop_SearchFailureKeepsStop verifies a failed search leaves the
// stop intact apart from stripping the place query.
func TestResolveStop_SearchFailureKeepsStop(t *testing.T) {
	svc := services.NewPlanService(&stubDraftClient{}, &stubPlacesClient{err: errors.New("timeout")}, stubBookClient{})

	stop := svc.ResolveStop(context.Background(), response_models.StopItem{
		Title: "청계천 산책",
		PlaceQuery: &response_models.PlaceQuery{
			City: "서울 종로구", Category: "산책", Keywords: []string{"청계천"},
		},
	}, "힐링", "난쏘공")

	assert.Equal(t, "청계천 산책", stop.Title)
	assert.Empty(t, stop.Place)
	assert.Nil(t, stop.PlaceQuery)
}

// TestResolveStop_FallbackQueries verifies the three-attempt search ladder:
// category plus keywords with city, title with city, then the bare title.
func TestResolveStop_FallbackQueries(t *testing.T) {
	places := &stubPlacesClient{}
	svc := services.NewPlanService(&stubDraftClient{}, places, stubBookClient{})

	svc.ResolveStop(context.Background(), response_models.StopItem{
		Title:      "광화문 걷기",
		PlaceQuery: &response_models.PlaceQuery{City: "서울 종로구", Category: "공원"},
	}, "", "")

	require.Len(t, places.calls, 3)
	assert.Equal(t, "서울 종로구|공원", places.calls[0])
	assert.Equal(t, "서울 종로구|광화문 걷기", places.calls[1])
	assert.Equal(t, "|광화문 걷기", places.calls[2])
}
