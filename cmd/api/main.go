package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fallapp-api/internal/config"
	"fallapp-api/internal/database"
	"fallapp-api/internal/job"
	"fallapp-api/internal/metrics"
	"fallapp-api/internal/repository"
	"fallapp-api/internal/router"
	"fallapp-api/internal/sentiment"
	"fallapp-api/internal/service"
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

	logger.Info("Starting FallApp API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
	)

	// Initialize metrics
	m := metrics.NewWithLogger(logger)

	// Initialize database; startup proceeds even when the database is
	// down so the pod stays alive and /ready reports the real state.
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
		database.NewAsync(dbConfig, 5*time.Second, logger)
	} else {
		logger.Info("Database connected")

		if err := database.AutoMigrate(db); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		} else {
			logger.Info("Database migrations completed")
		}

		database.RegisterMetricsCallbacks(db, m)
		database.StartDBStatsCollector(db, m)

		collector := metrics.NewBusinessMetricsCollector(db, m, logger)
		collector.Start()
		defer collector.Stop()
	}

	// Optional Redis cache for report snapshots
	redisClient, err := database.NewRedis(cfg.Redis, logger)
	if err != nil {
		logger.Warn("Failed to connect to Redis, report caching disabled", zap.Error(err))
		redisClient = nil
	}

	// Sentiment classification pipeline
	classifier := sentiment.NewClient(cfg.Sentiment.APIURL, cfg.Sentiment.Token, cfg.Sentiment.Timeout, logger, m)
	commentRepo := repository.NewCommentRepository(db)
	analyzer := sentiment.NewAnalyzer(
		classifier,
		commentRepo,
		cfg.Sentiment.Token,
		cfg.Sentiment.Workers,
		cfg.Sentiment.QueueSize,
		cfg.Sentiment.Timeout,
		logger,
		m,
	)
	if cfg.Sentiment.Token == "" {
		logger.Warn("Sentiment API token not configured, comments will stay pending")
	}

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:          db,
		Redis:       redisClient,
		Logger:      logger,
		Metrics:     m,
		Enqueuer:    analyzer,
		JWTSecret:   cfg.JWT.Secret,
		JWTLifetime: cfg.JWT.Lifetime,
		GinMode:     cfg.Server.Mode,
		BasePath:    cfg.Server.BasePath,
	})

	// Periodic backlog sweep for comments whose classification was
	// dropped or skipped
	userRepo := repository.NewUserRepository(db)
	fallaRepo := repository.NewFallaRepository(db)
	ninotRepo := repository.NewNinotRepository(db)
	commentService := service.NewCommentService(commentRepo, userRepo, fallaRepo, ninotRepo, analyzer, logger, m)

	scheduler := cron.New()
	if _, err := scheduler.AddJob(cfg.Sentiment.SweepSchedule, job.NewSweepJob(commentService, logger)); err != nil {
		logger.Error("Failed to schedule sentiment backlog sweep", zap.Error(err))
	} else {
		scheduler.Start()
		logger.Info("Sentiment backlog sweep scheduled",
			zap.String("schedule", cfg.Sentiment.SweepSchedule),
		)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("FallApp API started", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Let the in-flight classification tasks finish
	analyzer.Close()

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis client", zap.Error(err))
		}
	}
	if db != nil {
		if err := database.Close(db); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}

	logger.Info("Server exited gracefully")
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
