package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Amaldev1010/Archin-Eventmng/internal/app/models/dto"
	"github.com/Amaldev1010/Archin-Eventmng/internal/app/services"
	"github.com/Amaldev1010/Archin-Eventmng/internal/middleware"
)

// RegistrationController handles event registration operations
type RegistrationController struct {
	registrationService services.IRegistrationService
	logger              zerolog.Logger
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService services.IRegistrationService, logger zerolog.Logger) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
		logger:              logger,
	}
}

// Register registers the caller for an event
// @Summary Register for an event
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param event_id path int true "Event ID"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Already registered"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{event_id}/register/ [post]
func (c *RegistrationController) Register(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		abortMissingIdentity(ctx)
		return
	}

	eventID, ok := parseIDParam(ctx, "event_id")
	if !ok {
		return
	}

	if err := c.registrationService.Register(ctx.Request.Context(), userID, eventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Registered successfully and confirmation email sent."))
}

// Cancel cancels the caller's registration for an event
// @Summary Cancel a registration
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param event_id path int true "Event ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Not registered"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{event_id}/cancel/ [delete]
func (c *RegistrationController) Cancel(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		abortMissingIdentity(ctx)
		return
	}

	eventID, ok := parseIDParam(ctx, "event_id")
	if !ok {
		return
	}

	if err := c.registrationService.Cancel(ctx.Request.Context(), userID, eventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Registration cancelled successfully."))
}

// GetRegisteredEvents lists the events the caller is registered for
// @Summary List my registered events
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.EventResponse}
// @Router /events/registered/ [get]
func (c *RegistrationController) GetRegisteredEvents(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		abortMissingIdentity(ctx)
		return
	}

	events, err := c.registrationService.GetRegisteredEvents(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(events))
}

// GetParticipants lists the participants registered for an event
// @Summary List event participants
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param event_id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ParticipantResponse}
// @Router /participants/{event_id}/ [get]
func (c *RegistrationController) GetParticipants(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "event_id")
	if !ok {
		return
	}

	participants, err := c.registrationService.GetParticipants(ctx.Request.Context(), eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(participants))
}
