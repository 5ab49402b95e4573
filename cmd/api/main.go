package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"phonebot/internal/config"
	"phonebot/internal/database"
	"phonebot/internal/dedup"
	"phonebot/internal/handlers"
	"phonebot/internal/logger"
	"phonebot/internal/middleware"
	"phonebot/internal/services"
	"phonebot/internal/telegram"
	"phonebot/internal/validator"

	_ "phonebot/internal/docs" // Import swagger docs
)

// @title           Phonebot API
// @version         1.0
// @description     Admin API and Telegram webhook for the phone lookup directory bot.

// @host      localhost:8080
// @BasePath  /api

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.InitWithOptions(logger.Options{Env: appConfig.Env, File: appConfig.LogFile})
	defer logger.Sync()
	log := logger.Get()

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations("migrations"); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Update de-duplication
	var guard dedup.UpdateGuard = dedup.NopGuard{}
	if appConfig.RedisURL != "" {
		redisClient, err := dedup.Connect(context.Background(), appConfig.RedisURL)
		if err != nil {
			return err
		}
		defer func() { _ = redisClient.Close() }()
		guard = dedup.NewRedisGuard(redisClient, appConfig.UpdateDedupTTL)
		log.Info("Update de-duplication enabled")
	}

	// Outbound Telegram delivery
	var dispatcher *telegram.Dispatcher
	var notifier services.Notifier
	if appConfig.BotConfigured() {
		client := telegram.NewClient(
			appConfig.TelegramBotToken,
			appConfig.TelegramAPIEndpoint,
			&http.Client{Timeout: appConfig.TelegramSendTimeout},
		)
		dispatcher = telegram.NewDispatcher(client)
		notifier = dispatcher
	} else {
		log.Warn("TELEGRAM_BOT_TOKEN is not set; webhook requests will be rejected")
	}

	// Initialize services
	db := dbManager.DB()
	recordService := services.NewPhoneRecordService(db)
	userService := services.NewBotUserService(db)
	statisticsService := services.NewStatisticsService(db)
	botService := services.NewBotService(userService, recordService, notifier)

	// Initialize handlers
	adminHandler := handlers.NewAdminHandler(recordService, userService, statisticsService)
	botHandler := handlers.NewBotHandler(botService, guard)
	healthHandler := handlers.NewHealthHandler(dbManager)

	// Initialize Gin router
	router := gin.New()
	router.Use(middleware.RequestLogging())
	router.Use(middleware.Metrics())
	router.Use(middleware.Recovery())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Operational endpoints
	router.GET("/api/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public endpoints
	router.Any("/api/admin", middleware.AdminCORS(), adminHandler.Handle)
	router.Any(telegram.WebhookPath, middleware.WebhookCORS(), botHandler.Webhook)

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("Starting phonebot server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		log.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if dispatcher != nil {
		dispatcher.Wait()
	}
	log.Info("Server stopped")
	return nil
}
