package routes

import (
	"net/http"
	"time"

	"needmeet/handlers"
	"needmeet/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.Users.SignUpHandler)
		api.POST("/login", hb.Users.SignInHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/users", hb.Users.GetAllUsersHandler)
	}
}

// RegisterUserRoutes registers user account management endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/id/:id", hb.Users.GetUserByIDHandler)
		api.PUT("/update/:id", hb.Users.UpdateUserHandler)
		api.DELETE("/delete/:id", hb.Users.DeleteUserHandler)
	}
}

// RegisterProviderRoutes registers provider management endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		// Browsing providers and their reviews is public.
		api.GET("", hb.Providers.GetAllProvidersHandler)
		api.GET("/service/:serviceType", hb.Providers.GetProvidersByServiceHandler)
		api.GET("/:id", hb.Providers.GetProviderByIDHandler)
		api.GET("/:id/reviews", hb.Ratings.GetProviderReviewsHandler)

		// Endpoints that modify provider data require authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", hb.Providers.CreateProviderHandler)
		protected.PUT("/:id", hb.Providers.UpdateProviderHandler)
		protected.POST("/:id/reviews", hb.Ratings.AddProviderReviewHandler)
		protected.POST("/:id/report", hb.Ratings.ReportProviderHandler)
	}
}

// RegisterBookingRoutes registers all endpoints for the booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Bookings.CreateBookingHandler)
		api.GET("", hb.Bookings.ListBookingsHandler)
		api.GET("/user/:userId", hb.Bookings.GetUserBookingsHandler)
		api.GET("/provider/:providerId", hb.Bookings.GetProviderBookingsHandler)
		api.PATCH("/:id/status", hb.Bookings.UpdateBookingStatusHandler)
		api.DELETE("/:id", hb.Bookings.CancelBookingHandler)
	}
}

// RegisterRatingRoutes registers rating submission endpoints.
func RegisterRatingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ratings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Ratings.SubmitRatingHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.AdminAuthMiddleware(hb.UserRepo))
		api.GET("/dashboard", hb.Admin.DashboardHandler)
	}
}

// RegisterEmergencyRoutes registers the SOS endpoint.
func RegisterEmergencyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/emergency")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/sos", hb.Emergency.SOSHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm NeedMeet"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterRatingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterEmergencyRoutes(r, hb)
	RegisterHealthRoute(r)
}
