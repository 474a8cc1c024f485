package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every route handler so route registration
// stays in one place.
type HandlerBundle struct {
	// Catalog endpoints.
	ListDoctorsHandler       gin.HandlerFunc
	GetDoctorHandler         gin.HandlerFunc
	GetDoctorScheduleHandler gin.HandlerFunc
	ListServicesHandler      gin.HandlerFunc
	GetServiceHandler        gin.HandlerFunc
	ListTestimonialsHandler  gin.HandlerFunc
	ListFAQsHandler          gin.HandlerFunc
	ListGalleryHandler       gin.HandlerFunc
	GetClinicInfoHandler     gin.HandlerFunc
	GetPriceListHandler      gin.HandlerFunc

	// Availability endpoints.
	GetCalendarHandler gin.HandlerFunc
	GetSlotsHandler    gin.HandlerFunc

	// Booking wizard endpoints.
	StartSessionHandler  gin.HandlerFunc
	GetSessionHandler    gin.HandlerFunc
	UpdateDetailsHandler gin.HandlerFunc
	SubmitDetailsHandler gin.HandlerFunc
	BackHandler          gin.HandlerFunc
	MoveCalendarHandler  gin.HandlerFunc
	SelectSlotHandler    gin.HandlerFunc
	SubmitBookingHandler gin.HandlerFunc
	BookAnotherHandler   gin.HandlerFunc

	// Preference endpoints.
	GetThemeHandler gin.HandlerFunc
	SetThemeHandler gin.HandlerFunc

	// Chat endpoints.
	ChatHandler gin.HandlerFunc
}
