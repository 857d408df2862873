package routes

import (
	"strings"
	"time"

	"medigen/handlers"
	"medigen/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Chat requests reach a paid model, so they get a tighter per-IP budget.
const (
	aiRequestsPerMin = 20
	aiBurst          = 5
)

// RegisterShellRoutes registers navigation and sign-out.
func RegisterShellRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/pages/:page", middleware.UserAuthMiddleware(hb.Auth, true), hb.NavigateHandler)

	api := r.Group("/api/auth")
	{
		api.POST("/logout", middleware.UserAuthMiddleware(hb.Auth, false), hb.LogoutHandler)
		if hb.DevTokenHandler != nil {
			api.POST("/dev-token", hb.DevTokenHandler)
		}
	}
}

// RegisterCatalogRoutes registers the public reference data endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/doctors", hb.ListDoctorsHandler)
		api.GET("/doctors/specialties", hb.SpecialtiesHandler)
		api.GET("/doctors/top-rated", hb.TopRatedHandler)
		api.GET("/doctors/:id", hb.GetDoctorHandler)
		api.GET("/hospitals", hb.HospitalsHandler)
		api.GET("/articles", hb.ArticlesHandler)
		api.GET("/forum/topics", hb.ForumTopicsHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.UserAuthMiddleware(hb.Auth, false))
		bookingGroup.POST("/session", hb.InitiateSession)
		bookingGroup.GET("/session/:sessionID", hb.GetSession)
		bookingGroup.PUT("/session/:sessionID/date", hb.SelectDate)
		bookingGroup.PUT("/session/:sessionID/time", hb.SelectTime)
		bookingGroup.POST("/session/:sessionID/confirm", hb.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)
	}
}

// RegisterPatientRoutes registers the appointment list and the profile.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.UserAuthMiddleware(hb.Auth, false))
		api.GET("/appointments", hb.ListAppointmentsHandler)
		api.DELETE("/appointments/:id", hb.CancelAppointmentHandler)
		api.GET("/profile", hb.GetProfileHandler)
		api.PUT("/profile", hb.UpdateProfileHandler)
	}
}

// RegisterAIRoutes registers the assistant. Signing in is optional.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.Use(middleware.UserAuthMiddleware(hb.Auth, true))
		api.GET("/chat", hb.AIHistoryHandler)
		api.POST("/chat", middleware.RateLimitMiddleware(aiRequestsPerMin, aiBurst), hb.AIChatHandler)
	}
}

// RegisterOpsRoutes registers health and metrics.
func RegisterOpsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
	if hb.MetricsHandler != nil {
		r.GET("/metrics", hb.MetricsHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, corsOrigins string) {
	r.Use(cors.New(corsConfig(corsOrigins)))

	RegisterOpsRoutes(r, hb)
	RegisterShellRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPatientRoutes(r, hb)
	RegisterAIRoutes(r, hb)
}

func corsConfig(origins string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", handlers.ClientIDHeader, "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", handlers.ClientIDHeader, "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}

	var list []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			list = append(list, o)
		}
	}
	if len(list) == 0 || (len(list) == 1 && list[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = list
	cfg.AllowCredentials = true
	return cfg
}
