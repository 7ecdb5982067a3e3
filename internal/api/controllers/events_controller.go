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

type EventsController struct {
	eventService services.EventServiceInterface
}

func NewEventsController(eventService services.EventServiceInterface) *EventsController {
	return &EventsController{
		eventService: eventService,
	}
}

// CreateUserEvent godoc
// @Summary Create a user event
// @Description Create a user-authored event; it starts unplaced and is returned with its server-assigned id
// @Tags Events
// @Accept json
// @Produce json
// @Param request body planner.EventFields true "Event form fields; blank fields are omitted"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events/user-events [post]
func (e *EventsController) CreateUserEvent(c *gin.Context) {

	var fields planner.EventFields
	if err := c.ShouldBindJSON(&fields); err != nil || fields.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Event name is required")
		return
	}

	id, err := e.eventService.CreateUserEvent(c.Request.Context(), fields)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.CreatedEventResponse{ID: id}, "Event created successfully")
}

// SearchEvents godoc
// @Summary Search events
// @Description Search the event catalog with optional name/id/type/address and hard start/end window filters
// @Tags Events
// @Accept json
// @Produce json
// @Param request body planner.SearchFilters true "Optional filters; zero values are ignored"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events/search [post]
func (e *EventsController) SearchEvents(c *gin.Context) {

	var filters planner.SearchFilters
	if err := c.ShouldBindJSON(&filters); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid search filters")
		return
	}

	events, err := e.eventService.SearchEvents(c.Request.Context(), filters)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.SearchEventsResponse{Events: events}, "Events fetched successfully")
}

// DeleteUserEvent godoc
// @Summary Delete a user event
// @Description Delete a user-created event and every placement referencing it
// @Tags Events
// @Accept json
// @Produce json
// @Param eventId path int true "Event ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events/user-events/{eventId} [delete]
func (e *EventsController) DeleteUserEvent(c *gin.Context) {

	eventID, err := strconv.ParseInt(c.Param("eventId"), 10, 64)
	if err != nil || eventID <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event ID")
		return
	}

	if err := e.eventService.DeleteUserEvent(c.Request.Context(), eventID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Event deleted successfully")
}
