package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/eventhub/internal/app/models/dto"
	"github.com/campushub/eventhub/internal/app/services"
	"github.com/campushub/eventhub/internal/middleware"
	"github.com/campushub/eventhub/internal/pkg/apperrors"
)

// EventController handles event catalog operations
type EventController struct {
	eventService *services.EventService
	logger       zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService, logger zerolog.Logger) *EventController {
	return &EventController{
		eventService: eventService,
		logger:       logger,
	}
}

// List returns all events
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} models.Event
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/events [get]
func (c *EventController) List(ctx *gin.Context) {
	events, err := c.eventService.ListEvents(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list events")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// Create stores a new event
// @Summary Create an event
// @Description Admin only. Missing fields are reported as 400.
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/events [post]
func (c *EventController) Create(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		// The event endpoint reports every bind failure as a bad request
		detail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "name and poster are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	id, err := c.eventService.CreateEvent(ctx.Request.Context(), req.Name, req.Poster)
	if err != nil {
		c.logger.Warn().Err(err).Str("name", req.Name).Msg("Event creation failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("eventID", id).Str("name", req.Name).Msg("Event created")

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Event created!", ID: id})
}

// Delete removes an event
// @Summary Delete an event
// @Description Admin only. Registrations are not cascaded.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/events/{id} [delete]
func (c *EventController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrEventNotFound)
		return
	}

	if err := c.eventService.DeleteEvent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("eventID", id).Msg("Event deleted")

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Deleted"})
}
