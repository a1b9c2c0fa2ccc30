package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"readandlead/internal/services"
	"readandlead/pkg/utils"
)

type DiscoveryController struct {
	discoveryService services.DiscoveryServiceInterface
}

func NewDiscoveryController(discoveryService services.DiscoveryServiceInterface) *DiscoveryController {
	return &DiscoveryController{
		discoveryService: discoveryService,
	}
}

// CultureNearby godoc
// @Summary Cultural events near a point
// @Description Proxy the culture.go.kr period listing scoped by a bounding box; never fails, empty envelope on any problem
// @Tags Discovery
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in km" default(5)
// @Param from query string false "Start date (yyyymmdd)"
// @Param to query string false "End date (yyyymmdd)"
// @Param keyword query string false "Keyword filter"
// @Success 200 {object} map[string]interface{}
// @Router /culture/nearby [get]
func (d *DiscoveryController) CultureNearby(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid lat")
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid lng")
		return
	}
	radius, err := strconv.ParseFloat(c.DefaultQuery("radius", "5"), 64)
	if err != nil || radius <= 0 {
		radius = 5
	}

	body := d.discoveryService.CultureNearby(c.Request.Context(), lat, lng, radius,
		c.Query("from"), c.Query("to"), c.Query("keyword"))
	utils.RespondSuccess(c, body, "Events fetched successfully")
}

// Performances godoc
// @Summary List public performances
// @Description Proxy the KOPIS performance listing
// @Tags Discovery
// @Produce json
// @Param city query string false "Province display name, e.g. 서울특별시"
// @Param from query string false "Start date (yyyymmdd)"
// @Param to query string false "End date (yyyymmdd)"
// @Param rows query int false "Page size" default(20)
// @Param page query int false "Page number" default(1)
// @Success 200 {array} clients.Performance
// @Router /kopis/perform [get]
func (d *DiscoveryController) Performances(c *gin.Context) {
	rows, _ := strconv.Atoi(c.DefaultQuery("rows", "20"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	items, err := d.discoveryService.Performances(c.Request.Context(),
		c.Query("city"), c.Query("from"), c.Query("to"), rows, page, c.Query("gugun"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Performances fetched successfully")
}

// TourSearch godoc
// @Summary Keyword tourism search
// @Description Proxy the TourAPI keyword search; upstream payload passes through untouched
// @Tags Discovery
// @Produce json
// @Param keyword query string true "Search keyword"
// @Param numOfRows query int false "Page size" default(10)
// @Param pageNo query int false "Page number" default(1)
// @Success 200 {object} map[string]interface{}
// @Router /tour/search [get]
func (d *DiscoveryController) TourSearch(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		utils.RespondError(c, http.StatusBadRequest, "keyword is required")
		return
	}
	numOfRows, _ := strconv.Atoi(c.DefaultQuery("numOfRows", "10"))
	pageNo, _ := strconv.Atoi(c.DefaultQuery("pageNo", "1"))

	body, err := d.discoveryService.TourSearch(c.Request.Context(), keyword, numOfRows, pageNo)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, body, "Tour search fetched successfully")
}

// BookRecommendations godoc
// @Summary Librarian book picks
// @Description Proxy the national library recommendation feed
// @Tags Discovery
// @Produce json
// @Param startDate query string false "Start date (yyyymmdd)"
// @Param endDate query string false "End date (yyyymmdd)"
// @Param drCode query int false "Shelf code" default(11)
// @Success 200 {array} clients.BookPick
// @Router /library/recommendations [get]
func (d *DiscoveryController) BookRecommendations(c *gin.Context) {
	drCode, _ := strconv.Atoi(c.DefaultQuery("drCode", "11"))
	start, _ := strconv.Atoi(c.DefaultQuery("start", "1"))
	end, _ := strconv.Atoi(c.DefaultQuery("end", "20"))

	picks, err := d.discoveryService.BookRecommendations(c.Request.Context(),
		c.Query("startDate"), c.Query("endDate"), drCode, start, end)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, picks, "Recommendations fetched successfully")
}

// AgencyTrips godoc
// @Summary Curated partner tours
// @Description List the curated agency package tours
// @Tags Discovery
// @Produce json
// @Success 200 {array} response_models.AgencyTrip
// @Router /agency-trips/list [get]
func (d *DiscoveryController) AgencyTrips(c *gin.Context) {
	utils.RespondSuccess(c, d.discoveryService.AgencyTrips(), "Agency trips fetched successfully")
}
