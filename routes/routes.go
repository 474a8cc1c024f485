package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"galaxydental/handlers"
	"galaxydental/utils"
)

// RegisterCatalogRoutes registers the read-only clinic content endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/doctors", hb.ListDoctorsHandler)
		api.GET("/doctors/:id", hb.GetDoctorHandler)
		api.GET("/doctors/:id/schedule", hb.GetDoctorScheduleHandler)
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/services/:id", hb.GetServiceHandler)
		api.GET("/testimonials", hb.ListTestimonialsHandler)
		api.GET("/faqs", hb.ListFAQsHandler)
		api.GET("/gallery", hb.ListGalleryHandler)
		api.GET("/clinic", hb.GetClinicInfoHandler)
		api.GET("/pricing", hb.GetPriceListHandler)
	}
}

// RegisterAvailabilityRoutes registers the calendar/slot lookup endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/calendar", hb.GetCalendarHandler)
		api.GET("/slots", hb.GetSlotsHandler)
	}
}

// RegisterBookingRoutes sets up the booking wizard endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.StartSessionHandler)
		bookingGroup.GET("/session/:sessionID", hb.GetSessionHandler)
		bookingGroup.PUT("/session/:sessionID/details", hb.UpdateDetailsHandler)
		bookingGroup.POST("/session/:sessionID/details/submit", hb.SubmitDetailsHandler)
		bookingGroup.POST("/session/:sessionID/back", hb.BackHandler)
		bookingGroup.PUT("/session/:sessionID/calendar", hb.MoveCalendarHandler)
		bookingGroup.PUT("/session/:sessionID/slot", hb.SelectSlotHandler)
		bookingGroup.POST("/session/:sessionID/submit", hb.SubmitBookingHandler)
		bookingGroup.POST("/session/:sessionID/again", hb.BookAnotherHandler)
	}
}

// RegisterPreferenceRoutes registers the theme flag endpoints.
func RegisterPreferenceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/preferences")
	{
		api.GET("/theme", hb.GetThemeHandler)
		api.PUT("/theme", hb.SetThemeHandler)
	}
}

// RegisterChatRoutes registers the assistant widget endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/chat", hb.ChatHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm Galaxy Dental",
			"health":  utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPreferenceRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterHealthRoute(r)
}
