package handlers

import (
	"medigen/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Auth middleware.Authenticator

	// Shell endpoints
	NavigateHandler gin.HandlerFunc
	LogoutHandler   gin.HandlerFunc
	DevTokenHandler gin.HandlerFunc // nil in production

	// Catalog endpoints
	ListDoctorsHandler gin.HandlerFunc
	GetDoctorHandler   gin.HandlerFunc
	SpecialtiesHandler gin.HandlerFunc
	TopRatedHandler    gin.HandlerFunc
	HospitalsHandler   gin.HandlerFunc
	ArticlesHandler    gin.HandlerFunc
	ForumTopicsHandler gin.HandlerFunc

	// Booking endpoints
	InitiateSession gin.HandlerFunc
	GetSession      gin.HandlerFunc
	SelectDate      gin.HandlerFunc
	SelectTime      gin.HandlerFunc
	ConfirmBooking  gin.HandlerFunc
	CancelSession   gin.HandlerFunc

	// Appointment endpoints
	ListAppointmentsHandler  gin.HandlerFunc
	CancelAppointmentHandler gin.HandlerFunc

	// Profile endpoints
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc

	// AI endpoints
	AIHistoryHandler gin.HandlerFunc
	AIChatHandler    gin.HandlerFunc

	// Ops
	HealthHandler  gin.HandlerFunc
	MetricsHandler gin.HandlerFunc
}
