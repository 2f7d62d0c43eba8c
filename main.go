// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/safad643/eventBook/config"
	"github.com/safad643/eventBook/cron"
	"github.com/safad643/eventBook/database"
	bookingRepoPkg "github.com/safad643/eventBook/database/repository/booking"
	serviceRepoPkg "github.com/safad643/eventBook/database/repository/service"
	"github.com/safad643/eventBook/handlers"
	"github.com/safad643/eventBook/middleware"
	"github.com/safad643/eventBook/routes"
	"github.com/safad643/eventBook/services/booking"
	"github.com/safad643/eventBook/services/catalog"
	"github.com/safad643/eventBook/services/notification"
	"github.com/safad643/eventBook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
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
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// email queue client and worker.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	})
	defer asynqClient.Close()
	cron.InitEmailWorker(notification.NewSMTPMailer())

	notificationService, err := notification.NewAsynqNotificationService(asynqClient)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo:  serviceRepo,
		Cache: utils.GetCacheClient(),
	}
	bookingService := &booking.DefaultBookingService{
		ServiceRepo: serviceRepo,
		BookingRepo: bookingRepo,
		Notifier:    notificationService,
		Cache:       utils.GetCacheClient(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Service: handlers.NewServiceHandler(catalogService, logger),
	}

	// Register routes with the assembled handler bundle.
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
