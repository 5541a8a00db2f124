package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// Application Layer
	appService "countdown/internal/application/service"

	// Infrastructure Layer
	"countdown/internal/infrastructure/database/sqlite"
	lineClient "countdown/internal/infrastructure/line"
	"countdown/internal/infrastructure/scheduler"

	// Interfaces Layer
	"countdown/internal/interfaces/api/handler"
	"countdown/internal/interfaces/api/router"

	// Packages
	"countdown/internal/pkg/config"
	appLogger "countdown/internal/pkg/logger"
	"countdown/internal/pkg/metrics"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
	"gorm.io/gorm"
)

const (
	deliveryRetention = 7 * 24 * time.Hour
	pruneSpec         = "0 0 3 * * *" // Daily at 03:00
)

func gracefulShutdown(apiServer *http.Server, cronScheduler *scheduler.Scheduler, db *gorm.DB, log appLogger.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info("Shutting down gracefully, press Ctrl+C again to force")

	// Stop the scheduler first so no notification fires mid-shutdown.
	cronScheduler.Stop()

	if err := sqlite.CloseDB(db); err != nil {
		log.Error("Error closing database", err)
	} else {
		log.Info("Database connection closed.")
	}

	// The server has 5 seconds to finish the request it is currently handling.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err)
	}

	log.Info("Server exiting")
	done <- true
}

func main() {
	// --- Initialization ---
	cfg, err := config.Load()
	if err != nil {
		appLogger.New("info").Error("Invalid configuration", err)
		os.Exit(1)
	}
	appLog := appLogger.New(cfg.LogLevel)
	appLog.Info("Logger initialized.")

	appMetrics := metrics.NewMetrics(cfg.MetricsNamespace)

	// --- Infrastructure ---
	db, err := sqlite.NewDB(cfg.DatabaseURL, appLog)
	if err != nil {
		appLog.Error("Failed to open delivery log database", err)
		os.Exit(1)
	}
	deliveryRepo := sqlite.NewDeliveryRepository(db)

	cronScheduler := scheduler.NewScheduler(appLog)

	var deliverer appService.Deliverer
	if cfg.LineEnabled() {
		line, err := lineClient.NewClient(cfg.ChannelSecret, cfg.ChannelAccessToken, cfg.NotifyUserID, appLog)
		if err != nil {
			appLog.Error("Failed to create LINE client", err)
			os.Exit(1)
		}
		deliverer = line
	} else {
		appLog.Warn("LINE credentials not set, notifications will only be logged")
		deliverer = appService.NewLogDeliverer(appLog)
	}

	// --- Application Services ---
	notificationScheduler := appService.NewNotificationScheduler(cronScheduler, deliverer, deliveryRepo, appMetrics, appLog)
	countdownSvc := appService.NewCountdownService(notificationScheduler, appMetrics, appLog)
	deliverySvc := appService.NewDeliveryService(deliveryRepo, cronScheduler, appLog)
	if err := deliverySvc.SchedulePrune(pruneSpec, deliveryRetention); err != nil {
		// The service works without pruning; the log just grows.
		appLog.Error("Failed to schedule delivery log pruning", err)
	}
	appLog.Info("Application services initialized.")

	// --- Router ---
	echoRouter := router.NewRouter(&router.Config{
		CountdownHandler: handler.NewCountdownHandler(countdownSvc, time.Local, appLog),
		DeliveryHandler:  handler.NewDeliveryHandler(deliverySvc, appLog),
		MetricsHandler:   appMetrics.Handler(),
		Logger:           appLog,
	})

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      echoRouter,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, cronScheduler, db, appLog, done)

	appLog.Info(fmt.Sprintf("Server starting on port %d", cfg.Port))
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		appLog.Error("HTTP server ListenAndServe error", err)
		panic(fmt.Sprintf("http server error: %s", err))
	}

	<-done
	appLog.Info("Graceful shutdown complete.")
}
