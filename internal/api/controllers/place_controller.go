package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"readandlead/internal/models/request_models"
	"readandlead/internal/services"
	"readandlead/pkg/utils"
)

type PlaceController struct {
	placeService services.PlaceServiceInterface
}

func NewPlaceController(placeService services.PlaceServiceInterface) *PlaceController {
	return &PlaceController{
		placeService: placeService,
	}
}

// UpsertPlace godoc
// @Summary Pin a place
// @Description Save or refresh a place from an external provider, keyed on (source, externalId)
// @Tags Places
// @Accept json
// @Produce json
// @Param request body request_models.UpsertPlaceRequest true "Place payload"
// @Success 200 {object} response_models.SavedPlaceResponse
// @Security BearerAuth
// @Router /places/upsert [post]
func (p *PlaceController) UpsertPlace(c *gin.Context) {
	var request request_models.UpsertPlaceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid place payload")
		return
	}

	place, err := p.placeService.UpsertPlace(c.Request.Context(), c.GetString("user_id"), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, place, "Place saved successfully")
}

// ListSavedPlaces godoc
// @Summary List pinned places
// @Tags Places
// @Produce json
// @Success 200 {array} response_models.SavedPlaceResponse
// @Security BearerAuth
// @Router /places [get]
func (p *PlaceController) ListSavedPlaces(c *gin.Context) {
	places, err := p.placeService.ListSavedPlaces(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}

// SearchPlaces godoc
// @Summary Keyword place search
// @Description Proxy a keyword search to the places provider, optionally scoped to a city
// @Tags Places
// @Produce json
// @Param query query string true "Search keyword"
// @Param city query string false "City or district to scope the search"
// @Success 200 {array} response_models.PlaceHit
// @Router /places/search [get]
func (p *PlaceController) SearchPlaces(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "query is required")
		return
	}

	hits, err := p.placeService.SearchPlaces(c.Request.Context(), query, c.Query("city"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, hits, "Places searched successfully")
}
