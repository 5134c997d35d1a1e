package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Amaldev1010/Archin-Eventmng/internal/app/models/dto"
	"github.com/Amaldev1010/Archin-Eventmng/internal/app/services"
	"github.com/Amaldev1010/Archin-Eventmng/internal/middleware"
)

// UserController handles user profile operations
type UserController struct {
	userService services.IUserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService services.IUserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// GetProfile returns the caller's public profile
// @Summary Get my profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Router /user/ [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		abortMissingIdentity(ctx)
		return
	}

	profile, err := c.userService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// DeleteAccount deletes the caller's account with all owned events and
// registrations
// @Summary Delete my account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /delete-account/ [delete]
func (c *UserController) DeleteAccount(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		abortMissingIdentity(ctx)
		return
	}

	username, err := c.userService.DeleteAccount(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("username", username).Msg("Account deletion completed")

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(fmt.Sprintf("User '%s' deleted successfully.", username)))
}
