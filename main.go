package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"servismart/config"
	"servismart/cron"
	"servismart/database"
	appointmentRepo "servismart/database/repository/appointment"
	contactRepo "servismart/database/repository/contact"
	"servismart/handlers"
	"servismart/middleware"
	"servismart/models"
	"servismart/routes"
	"servismart/services/appointment"
	"servismart/services/contact"
	"servismart/services/tasks"
	"servismart/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	if err := apptRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}
	msgRepo := contactRepo.NewMongoContactRepo()

	// reminder queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	cron.InitReminderWorker(apptRepo)

	// services.
	catalog := models.DefaultPricingCatalog()
	appointmentService := &appointment.DefaultAppointmentService{
		Repo:      apptRepo,
		Catalog:   catalog,
		Cache:     utils.GetCacheClient(),
		Reminders: &tasks.Scheduler{Client: asynqClient},
	}
	contactService := &contact.DefaultContactService{
		Repo: msgRepo,
	}

	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, catalog)
	contactHandler := handlers.NewContactHandler(contactService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ListAppointmentsHandler:    appointmentHandler.ListAppointmentsHandler,
		CreateAppointmentHandler:   appointmentHandler.CreateAppointmentHandler,
		CompleteAppointmentHandler: appointmentHandler.CompleteAppointmentHandler,
		AvailabilityHandler:        appointmentHandler.AvailabilityHandler,
		WashMenuHandler:            appointmentHandler.WashMenuHandler,

		SubmitContactHandler: contactHandler.SubmitContactHandler,
		ListContactsHandler:  contactHandler.ListContactsHandler,
		DeleteContactHandler: contactHandler.DeleteContactHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

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
