package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readandlead/internal/api/controllers"
	"readandlead/internal/models/response_models"
	"readandlead/pkg/clients"
	"readandlead/pkg/utils"
)

type stubPlanService struct {
	plan response_models.TravelPlan
}

func (s *stubPlanService) GeneratePlan(ctx context.Context, in clients.PlanInput) (response_models.TravelPlan, error) {
	return s.plan, nil
}

func (s *stubPlanService) ResolveStop(ctx context.Context, stop response_models.StopItem, themeHint, globalHint string) response_models.StopItem {
	stop.Place = "resolved"
	return stop
}

func (s *stubPlanService) SequenceStops(stops []response_models.StopItem) []response_models.StopItem {
	return stops
}

func newTripRouter(svc *stubPlanService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := controllers.NewTripController(svc)
	r.POST("/api/trips/:tripId/plan", ctrl.GeneratePlan)
	r.POST("/api/trips/stops/resolve", ctrl.ResolveStop)
	return r
}

// TestGeneratePlan_OK verifies the happy path wraps the plan in the standard
// envelope.
func TestGeneratePlan_OK(t *testing.T) {
	svc := &stubPlanService{plan: response_models.TravelPlan{
		Summary: "요약",
		Days:    []response_models.DayPlan{{Day: 1, Stops: []response_models.StopItem{}}},
	}}
	r := newTripRouter(svc)

	body := `{"bookTitle":"토지","days":2,"theme":"문학"}`
	req := httptest.NewRequest(http.MethodPost, "/api/trips/abc/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
}

// TestGeneratePlan_MissingDays verifies binding validation rejects a payload
// without the required day count.
func TestGeneratePlan_MissingDays(t *testing.T) {
	r := newTripRouter(&stubPlanService{})

	req := httptest.NewRequest(http.MethodPost, "/api/trips/abc/plan", strings.NewReader(`{"bookTitle":"토지"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestResolveStop_OK verifies the resolve endpoint passes the stop through
// the service.
func TestResolveStop_OK(t *testing.T) {
	r := newTripRouter(&stubPlanService{})

	body := `{"stop":{"title":"청계천 산책"},"theme_hint":"힐링","global_hint":"난쏘공"}`
	req := httptest.NewRequest(http.MethodPost, "/api/trips/stops/resolve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "resolved")
}
