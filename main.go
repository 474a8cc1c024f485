// File: galaxydental/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"galaxydental/config"
	"galaxydental/handlers"
	"galaxydental/middleware"
	"galaxydental/routes"
	"galaxydental/services"
	"galaxydental/services/booking"
	"galaxydental/services/notify"
	"galaxydental/store"
	"galaxydental/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()
	utils.InitPrefsCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Stores.
	catalog := store.NewMemoryCatalog()
	sessionRepo := store.NewRedisSessionRepo(
		utils.GetSessionClient(),
		time.Duration(config.AppConfig.SessionTTLMin)*time.Minute,
	)
	themeRepo := store.NewRedisThemeRepo(utils.GetPrefsClient())

	// Services.
	availabilityService := &services.DefaultAvailabilityService{}

	webhookNotifier := notify.NewWebhookNotifier(
		config.AppConfig.WebhookURL,
		time.Duration(config.AppConfig.WebhookTimeoutMS)*time.Millisecond,
		logger,
	)
	automationRunner := &booking.AutomationRunner{
		Sessions:  sessionRepo,
		Notifier:  webhookNotifier,
		StepDelay: time.Duration(config.AppConfig.AutomationStepDelayMS) * time.Millisecond,
		Logger:    logger,
	}
	bookingService := &booking.DefaultBookingService{
		Sessions:     sessionRepo,
		Availability: availabilityService,
		Automation:   automationRunner,
		Logger:       logger,
	}
	chatService := &services.DefaultChatService{}

	// Handlers.
	catalogHandler := handlers.NewCatalogHandler(catalog, availabilityService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	themeHandler := handlers.NewThemeHandler(themeRepo, config.AppConfig.DefaultTheme)
	chatHandler := handlers.NewChatHandler(chatService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Catalog endpoints.
		ListDoctorsHandler:       catalogHandler.ListDoctorsHandler,
		GetDoctorHandler:         catalogHandler.GetDoctorHandler,
		GetDoctorScheduleHandler: catalogHandler.GetDoctorScheduleHandler,
		ListServicesHandler:      catalogHandler.ListServicesHandler,
		GetServiceHandler:        catalogHandler.GetServiceHandler,
		ListTestimonialsHandler:  catalogHandler.ListTestimonialsHandler,
		ListFAQsHandler:          catalogHandler.ListFAQsHandler,
		ListGalleryHandler:       catalogHandler.ListGalleryHandler,
		GetClinicInfoHandler:     catalogHandler.GetClinicInfoHandler,
		GetPriceListHandler:      catalogHandler.GetPriceListHandler,

		// Availability endpoints.
		GetCalendarHandler: availabilityHandler.GetCalendarHandler,
		GetSlotsHandler:    availabilityHandler.GetSlotsHandler,

		// Booking wizard endpoints.
		StartSessionHandler:  bookingHandler.StartSessionHandler,
		GetSessionHandler:    bookingHandler.GetSessionHandler,
		UpdateDetailsHandler: bookingHandler.UpdateDetailsHandler,
		SubmitDetailsHandler: bookingHandler.SubmitDetailsHandler,
		BackHandler:          bookingHandler.BackHandler,
		MoveCalendarHandler:  bookingHandler.MoveCalendarHandler,
		SelectSlotHandler:    bookingHandler.SelectSlotHandler,
		SubmitBookingHandler: bookingHandler.SubmitBookingHandler,
		BookAnotherHandler:   bookingHandler.BookAnotherHandler,

		// Preference endpoints.
		GetThemeHandler: themeHandler.GetThemeHandler,
		SetThemeHandler: themeHandler.SetThemeHandler,

		// Chat endpoints.
		ChatHandler: chatHandler.ChatHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{
		utils.GetSessionClient(),
		utils.GetPrefsClient(),
	})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
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
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
