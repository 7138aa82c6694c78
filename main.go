// File: needmeet/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"needmeet/config"
	"needmeet/cron"
	"needmeet/database"
	bookingRepoPkg "needmeet/database/repository/booking"
	providerRepoPkg "needmeet/database/repository/provider"
	userRepoPkg "needmeet/database/repository/user"
	"needmeet/events"
	"needmeet/handlers"
	"needmeet/middleware"
	"needmeet/routes"
	"needmeet/services/admin"
	"needmeet/services/booking"
	"needmeet/services/emergency"
	"needmeet/services/provider"
	"needmeet/services/rating"
	"needmeet/services/user"
	"needmeet/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Kafka publisher for domain events.
	var publisher events.Publisher
	var kafkaPublisher *events.KafkaPublisher
	if config.AppConfig.KafkaBrokers != "" {
		kafkaPublisher = events.NewKafkaPublisher(
			strings.Split(config.AppConfig.KafkaBrokers, ","),
			config.AppConfig.KafkaEventsTopic,
		)
		publisher = kafkaPublisher
	} else {
		logger.Warn("main: no Kafka brokers configured, domain events disabled")
	}

	// Reminder scheduling via asynq.
	reminderRedisOpt := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
	reminderLead := time.Duration(config.AppConfig.BookingReminderLeadMin) * time.Minute
	reminderScheduler := cron.NewReminderScheduler(reminderRedisOpt, reminderLead)
	cron.InitReminderWorker()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookRepo := bookingRepoPkg.NewMongoBookingRepo()
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		Providers: provRepo,
		AuthCache: utils.GetAuthCacheClient(),
		TokenTTL:  config.AppConfig.TokenTTL,
	}

	providerService := &provider.DefaultProviderService{
		Repo: provRepo,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:      bookRepo,
		Providers: provRepo,
		Events:    publisher,
		Reminders: reminderScheduler,
		PageSize:  config.AppConfig.BookingPageSize,
	}

	ratingService := &rating.DefaultRatingService{
		Providers: provRepo,
		Events:    publisher,
	}

	adminService := &admin.DefaultAdminService{
		Bookings:  bookRepo,
		Providers: provRepo,
		Users:     userRepo,
	}

	emergencyService := &emergency.DefaultEmergencyService{
		Events: publisher,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:  userRepo,
		Users:     handlers.NewUserHandler(userService),
		Providers: handlers.NewProviderHandler(providerService),
		Bookings:  handlers.NewBookingHandler(bookingService, logger),
		Ratings:   handlers.NewRatingHandler(ratingService, logger),
		Admin:     handlers.NewAdminHandler(adminService),
		Emergency: handlers.NewEmergencyHandler(emergencyService),
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

	if err := reminderScheduler.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close reminder scheduler: %v", err)
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			logger.Sugar().Warnf("main: failed to close event publisher: %v", err)
		}
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
