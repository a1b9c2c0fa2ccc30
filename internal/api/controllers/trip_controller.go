package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"readandlead/internal/models/request_models"
	"readandlead/internal/services"
	"readandlead/pkg/clients"
	"readandlead/pkg/utils"
)

type TripController struct {
	planService services.PlanServiceInterface
}

func NewTripController(planService services.PlanServiceInterface) *TripController {
	return &TripController{
		planService: planService,
	}
}

// GeneratePlan godoc
// @Summary Generate a book-based travel plan
// @Description Draft an itinerary from the book, resolve every stop to a real place, and order each day's route. Falls back to a degraded static plan when drafting fails.
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.PlanRequest true "Plan payload"
// @Success 200 {object} response_models.TravelPlan
// @Failure 400 {object} utils.APIResponse
// @Router /trips/{tripId}/plan [post]
func (t *TripController) GeneratePlan(c *gin.Context) {
	var request request_models.PlanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan payload")
		return
	}

	travelers := request.Travelers
	if travelers < 1 {
		travelers = 1
	}

	plan, err := t.planService.GeneratePlan(c.Request.Context(), clients.PlanInput{
		BookTitle: request.BookTitle,
		Travelers: travelers,
		Days:      request.Days,
		Theme:     request.Theme,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan generated successfully")
}

// ResolveStop godoc
// @Summary Resolve a single stop
// @Description Normalize the stop's place query and attach the best matching real place
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.ResolveStopRequest true "Stop payload"
// @Success 200 {object} response_models.StopItem
// @Router /trips/stops/resolve [post]
func (t *TripController) ResolveStop(c *gin.Context) {
	var request request_models.ResolveStopRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid stop payload")
		return
	}

	stop := t.planService.ResolveStop(c.Request.Context(), request.Stop, request.ThemeHint, request.GlobalHint)
	utils.RespondSuccess(c, stop, "Stop resolved successfully")
}

// SequenceStops godoc
// @Summary Order stops by distance
// @Description Greedy nearest-neighbor ordering; stops without coordinates keep their input order at the tail
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.SequenceStopsRequest true "Stops payload"
// @Success 200 {array} response_models.StopItem
// @Router /trips/stops/sequence [post]
func (t *TripController) SequenceStops(c *gin.Context) {
	var request request_models.SequenceStopsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid stops payload")
		return
	}

	stops := t.planService.SequenceStops(request.Stops)
	utils.RespondSuccess(c, stops, "Stops ordered successfully")
}
