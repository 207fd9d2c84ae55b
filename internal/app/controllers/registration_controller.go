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

// RegistrationController handles the registration ledger
type RegistrationController struct {
	registrationService *services.RegistrationService
	logger              zerolog.Logger
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService *services.RegistrationService, logger zerolog.Logger) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
		logger:              logger,
	}
}

// List returns all registrations
// @Summary List registrations
// @Tags registrations
// @Produce json
// @Success 200 {array} models.Registration
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/register [get]
func (c *RegistrationController) List(ctx *gin.Context) {
	regs, err := c.registrationService.ListRegistrations(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list registrations")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, regs)
}

// Create stores a new registration
// @Summary Register for an event
// @Description Any authenticated user. One registration per (student, event name) pair.
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body dto.CreateRegistrationRequest true "Registration"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed JSON"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "Already registered"
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/register [post]
func (c *RegistrationController) Create(ctx *gin.Context) {
	var req dto.CreateRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration payload")
		status, detail := dto.HandleBindingError(err)
		ctx.JSON(status, dto.NewErrorResponse(detail))
		return
	}

	id, err := c.registrationService.CreateRegistration(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("studentID", req.StudentID).
			Str("event", req.EventName).
			Msg("Registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("registrationID", id).
		Str("studentID", req.StudentID).
		Str("event", req.EventName).
		Msg("Registration created")

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Registered!", ID: id})
}

// Delete removes a registration
// @Summary Delete a registration
// @Description Admin only.
// @Tags registrations
// @Produce json
// @Param id path int true "Registration ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/register/{id} [delete]
func (c *RegistrationController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrRegistrationNotFound)
		return
	}

	if err := c.registrationService.DeleteRegistration(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("registrationID", id).Msg("Registration deleted")

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Deleted"})
}
