package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amaldev1010/Archin-Eventmng/internal/app/controllers"
	"github.com/Amaldev1010/Archin-Eventmng/internal/middleware"
	"github.com/Amaldev1010/Archin-Eventmng/internal/pkg/auth"
)

// SetupRouter configures all application routes. Paths keep their trailing
// slashes to stay wire-compatible with existing clients.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	registrationController *controllers.RegistrationController,
	userController *controllers.UserController,
	jwtService *auth.JWTService,
) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public auth routes ---
	router.POST("/register/", authController.Signup)
	router.POST("/login/", authController.Login)
	router.POST("/token/refresh/", authController.RefreshToken)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(middleware.JWTAuth(jwtService))
	{
		authenticated.POST("/logout/", authController.Logout)
		authenticated.GET("/user/", userController.GetProfile)
		authenticated.DELETE("/delete-account/", userController.DeleteAccount)

		// Event CRUD
		authenticated.GET("/events/", eventController.GetAllEvents)
		authenticated.POST("/events/add/", eventController.CreateEvent)
		authenticated.GET("/events/add/", eventController.GetMyEvents)
		authenticated.GET("/events/my-events/", eventController.GetMyEvents)
		authenticated.GET("/events/edit/:id/", eventController.GetEvent)
		authenticated.PUT("/events/edit/:id/", eventController.UpdateEvent)
		authenticated.PATCH("/events/edit/:id/", eventController.UpdateEvent)
		authenticated.DELETE("/events/delete/:id/", eventController.DeleteEvent)

		// Registration lifecycle
		authenticated.POST("/events/:event_id/register/", registrationController.Register)
		authenticated.DELETE("/events/:event_id/cancel/", registrationController.Cancel)
		authenticated.GET("/events/registered/", registrationController.GetRegisteredEvents)
		authenticated.GET("/participants/:event_id/", registrationController.GetParticipants)
	}
}
