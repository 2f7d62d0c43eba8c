package routes

import (
	"net/http"
	"time"

	"github.com/safad643/eventBook/handlers"
	"github.com/safad643/eventBook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterServiceRoutes registers the public catalog endpoints and the
// protected provider-listing endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Service.ListServicesHandler)
		api.GET("/:id", hb.Service.GetServiceHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", hb.Service.CreateServiceHandler)
		protected.PATCH("/:id", hb.Service.UpdateServiceHandler)
		protected.DELETE("/:id", hb.Service.DeleteServiceHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking ledger.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("", hb.Booking.GetMyBookingsHandler)
		api.PATCH("/:id/cancel", hb.Booking.CancelBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "eventBook is up"})
	})
}

// RegisterRoutes wires all route groups onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
