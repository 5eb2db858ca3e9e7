// @title           Hangout Service API
// @version         1.0
// @description     Social event coordination API: hangouts, polls, consensus and RSVPs

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api/hangouts

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	_ "hangout-api/docs" // Swagger docs import

	"hangout-api/internal/client"
	"hangout-api/internal/config"
	"hangout-api/internal/consensus"
	"hangout-api/internal/database"
	"hangout-api/internal/job"
	"hangout-api/internal/metrics"
	"hangout-api/internal/repository"
	"hangout-api/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Hangout Service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
	)

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	logger.Info("Metrics initialized")

	// Initialize database. A failed connection does not kill the pod; the
	// connection is retried in the background so the health endpoint stays up.
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second)
	} else {
		logger.Info("Database connected successfully")

		if err := database.SafeAutoMigrateWithRetry(db, logger, 3); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		} else {
			logger.Info("Database migrations completed")
		}

		database.RegisterMetricsCallbacks(db, m)
		startDBStatsCollector(db, m)

		collector := metrics.NewBusinessMetricsCollector(db, m, logger)
		collector.Start()
		defer collector.Stop()
	}

	// Initialize Redis for the live event feed. The service degrades
	// gracefully without it.
	if err := database.InitRedis(*cfg, logger); err != nil {
		logger.Warn("Failed to connect to Redis, live feed disabled", zap.Error(err))
	} else {
		logger.Info("Redis connected successfully")
	}

	// Notification client; a missing base URL swaps in the no-op client
	var notificationClient client.NotificationClient
	if cfg.Notification.BaseURL != "" {
		notificationClient = client.NewNotificationClient(
			cfg.Notification.BaseURL,
			cfg.Notification.APIKey,
			cfg.Notification.Timeout,
			logger,
			m,
		)
		logger.Info("Notification client initialized",
			zap.String("notification_api_url", cfg.Notification.BaseURL),
		)
	} else {
		notificationClient = client.NewNoOpNotificationClient()
		logger.Warn("Notification base URL not configured, notifications disabled")
	}

	// Lifecycle sweep: ended hangouts move to COMPLETED every 5 minutes
	scheduler := cron.New()
	if db != nil {
		lifecycleJob := job.NewLifecycleJob(
			repository.NewHangoutRepository(db),
			repository.NewPollRepository(db),
			logger,
		)
		if _, err := scheduler.AddJob("*/5 * * * *", lifecycleJob); err != nil {
			logger.Error("Failed to schedule lifecycle job", zap.Error(err))
		} else {
			scheduler.Start()
			defer scheduler.Stop()
		}
	}

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:                 db,
		Logger:             logger,
		JWTSecret:          cfg.JWT.Secret,
		BasePath:           cfg.Server.BasePath,
		AllowedOrigins:     cfg.CORS.AllowedOrigins,
		NotificationClient: notificationClient,
		ConsensusSettings: consensus.Settings{
			Threshold:       cfg.Consensus.DefaultThreshold,
			MinParticipants: cfg.Consensus.DefaultMinParticipants,
		},
		Metrics: m,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Hangout Service started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s%s/swagger/index.html", cfg.Server.Port, cfg.Server.BasePath)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	database.CloseRedis()

	logger.Info("Server exited gracefully")
}

// startDBStatsCollector polls connection pool stats into the gauges
func startDBStatsCollector(db *gorm.DB, m *metrics.Metrics) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			m.UpdateDBStats(sqlDB.Stats())
		}
	}()
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
