package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wander/internal/models/response_models"
	"wander/internal/planner"
	"wander/internal/services"
	"wander/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GetItineraryByID godoc
// @Summary Get itinerary by ID
// @Description Fetch the full itinerary: days with per-block event arrays plus the unassigned pool
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param itineraryId path int true "Itinerary ID"
// @Success 200 {object} planner.Itinerary
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId} [get]
func (i *ItineraryController) GetItineraryByID(c *gin.Context) {

	itineraryID, err := strconv.ParseInt(c.Param("itineraryId"), 10, 64)
	if err != nil || itineraryID <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary ID")
		return
	}

	itinerary, err := i.itineraryService.GetItineraryByID(c.Request.Context(), itineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// SaveItinerary godoc
// @Summary Save itinerary
// @Description Replace the persisted schedule with the submitted working copy. Last write wins.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body planner.Itinerary true "Full itinerary wire shape"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/save [put]
func (i *ItineraryController) SaveItinerary(c *gin.Context) {

	var in planner.Itinerary
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary payload")
		return
	}

	id, err := i.itineraryService.SaveItinerary(c.Request.Context(), &in)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.SavedItineraryResponse{ID: id}, "Itinerary saved successfully")
}
