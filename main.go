package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medigen/config"
	"medigen/database"
	kvRepo "medigen/database/repository/kv"
	sessionRepo "medigen/database/repository/session"
	"medigen/handlers"
	"medigen/middleware"
	"medigen/routes"
	"medigen/services/appointments"
	"medigen/services/booking"
	"medigen/services/catalog"
	"medigen/services/identity"
	ai "medigen/services/intelligence"
	"medigen/services/profile"
	"medigen/services/shell"
	"medigen/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	chatHistoryTTL = 24 * time.Hour
	healthInterval = 30 * time.Second
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	utils.InitRedis()

	// durable storage
	var store kvRepo.Store
	var mongoClient *mongo.Client
	switch config.AppConfig.StorageBackend {
	case "redis":
		store = kvRepo.NewRedisStore(utils.GetStorageClient())
	default:
		database.InitDB()
		mongoClient = database.MongoClient
		store = kvRepo.NewMongoStore(database.Database().Collection(kvRepo.CollectionName))
	}
	logger.Info("durable storage ready", zap.String("backend", config.AppConfig.StorageBackend))

	// identity
	verifier, issuer := buildVerifier(logger)
	identitySvc := identity.NewService(verifier, utils.GetAuthCacheClient())

	// services.
	cat := catalog.New()
	bookingService := &booking.DefaultBookingSessionService{
		Catalog: cat,
		Repo:    sessionRepo.NewRedisSessionRepo(utils.GetSessionClient()),
		TTL:     config.AppConfig.BookingSessionTTL,
	}
	registry := appointments.NewRegistry(store, appointments.ParseOrdering(config.AppConfig.AppointmentOrdering))
	appShell := shell.New(bookingService, registry)
	profileService := profile.NewService(store)

	var generator ai.Generator
	if config.AppConfig.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiClient(context.Background(), config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini: %v", err)
		}
		defer gemini.Close()
		generator = gemini
	} else {
		logger.Warn("GEMINI_API_KEY not set; the assistant will answer with the apology message")
	}
	assistant := ai.NewHealthAssistant(generator, ai.NewRedisChatStore(utils.GetChatClient(), chatHistoryTTL))

	// handlers.
	catalogHandler := handlers.NewCatalogHandler(cat)
	bookingHandler := handlers.NewBookingHandler(bookingService, appShell)
	appointmentHandler := handlers.NewAppointmentHandler(appShell)
	profileHandler := handlers.NewProfileHandler(profileService)
	aiHandler := handlers.NewAIHandler(assistant)
	authHandler := handlers.NewAuthHandler(identitySvc, appShell, issuer)

	handlerBundle := &handlers.HandlerBundle{
		Auth: identitySvc,

		NavigateHandler: authHandler.NavigateHandler,
		LogoutHandler:   authHandler.LogoutHandler,

		ListDoctorsHandler: catalogHandler.ListDoctorsHandler,
		GetDoctorHandler:   catalogHandler.GetDoctorHandler,
		SpecialtiesHandler: catalogHandler.SpecialtiesHandler,
		TopRatedHandler:    catalogHandler.TopRatedHandler,
		HospitalsHandler:   catalogHandler.HospitalsHandler,
		ArticlesHandler:    catalogHandler.ArticlesHandler,
		ForumTopicsHandler: catalogHandler.ForumTopicsHandler,

		InitiateSession: bookingHandler.InitiateSession,
		GetSession:      bookingHandler.GetSession,
		SelectDate:      bookingHandler.SelectDate,
		SelectTime:      bookingHandler.SelectTime,
		ConfirmBooking:  bookingHandler.ConfirmBooking,
		CancelSession:   bookingHandler.CancelSession,

		ListAppointmentsHandler:  appointmentHandler.ListAppointmentsHandler,
		CancelAppointmentHandler: appointmentHandler.CancelAppointmentHandler,

		GetProfileHandler:    profileHandler.GetProfileHandler,
		UpdateProfileHandler: profileHandler.UpdateProfileHandler,

		AIHistoryHandler: aiHandler.HistoryHandler,
		AIChatHandler:    aiHandler.ChatHandler,

		HealthHandler:  handlers.HealthHandler,
		MetricsHandler: handlers.MetricsHandler(),
	}
	if issuer != nil {
		handlerBundle.DevTokenHandler = authHandler.DevTokenHandler
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin, config.AppConfig.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle, config.AppConfig.CORSOrigins)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, healthInterval, utils.RedisClients(), mongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to close MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// buildVerifier picks Firebase when credentials are configured and locally
// signed tokens otherwise. The issuer is returned only outside production.
func buildVerifier(logger *zap.Logger) (identity.Verifier, *identity.TokenVerifier) {
	if file := config.AppConfig.FirebaseCredentialsFile; file != "" {
		client, err := utils.FirebaseAuth(context.Background(), file)
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		return identity.NewFirebaseVerifier(client), nil
	}

	if config.IsProduction() {
		logger.Fatal("FIREBASE_CREDENTIALS_FILE is required in production")
	}
	tv, err := identity.NewTokenVerifier(config.AppConfig.JWTSecret)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	logger.Warn("using locally signed development tokens")
	return tv, tv
}
