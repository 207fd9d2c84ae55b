package routes

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campushub/eventhub/internal/app/controllers"
	"github.com/campushub/eventhub/internal/middleware"
)

// SetupRouter configures all application routes. Guards are composed here:
// pages get the redirecting guard, the API gets the 401 guard, and admin
// operations stack the role check on top.
func SetupRouter(
	router *gin.Engine,
	db *sql.DB,
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	registrationController *controllers.RegistrationController,
	pageController *controllers.PageController,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	// --- Page routes ---
	router.GET("/", sessionMiddleware.PageAuth(), pageController.Index)
	router.GET("/login", pageController.Login)

	api := router.Group("/api")

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.GET("/me", sessionMiddleware.APIAuth(), authController.Me)
	}

	// --- Event catalog ---
	events := api.Group("/events")
	events.Use(sessionMiddleware.APIAuth())
	{
		events.GET("", eventController.List)

		eventsAdmin := events.Group("")
		eventsAdmin.Use(sessionMiddleware.AdminRequired())
		{
			eventsAdmin.POST("", eventController.Create)
			eventsAdmin.DELETE("/:id", eventController.Delete)
		}
	}

	// --- Registration ledger ---
	register := api.Group("/register")
	register.Use(sessionMiddleware.APIAuth())
	{
		register.GET("", registrationController.List)
		register.POST("", registrationController.Create)

		registerAdmin := register.Group("")
		registerAdmin.Use(sessionMiddleware.AdminRequired())
		{
			registerAdmin.DELETE("/:id", registrationController.Delete)
		}
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Prometheus scrape endpoint (public)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
