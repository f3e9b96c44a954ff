package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"event-planner/cmd"
	"event-planner/internal/data/repository"
	"event-planner/internal/scheduler"
	"event-planner/internal/usecase"
	"event-planner/internal/wire"
	"event-planner/pkg/database"
	"event-planner/pkg/events"
	"event-planner/pkg/lock"
	"event-planner/pkg/metrics"
	"event-planner/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.Name, config.Log, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("storage", config.Storage.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeStore := initRepository(ctx, config, logger)
	defer closeStore()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	publisher := initPublisher(config, logger)
	defer publisher.Close()

	infra := usecase.Infra{
		Locker:    initLocker(ctx, config, logger),
		Publisher: publisher,
		Metrics:   metrics.New(registry),
	}

	app := wire.Wiring(repos, infra, registry, logger)

	jobs, err := scheduler.New(app.Service.Booking, config.Scheduler.CompletionInterval, logger)
	if err != nil {
		logger.Fatal("Failed to create scheduler", zap.Error(err))
	}
	jobs.Start()
	defer func() {
		if err := jobs.Shutdown(); err != nil {
			logger.Warn("Scheduler shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}

func initRepository(ctx context.Context, config *utils.Config, logger *zap.Logger) (*repository.Repository, func()) {
	if config.Storage.Driver != "postgres" {
		logger.Info("Using in-memory storage")
		return repository.NewMemoryRepository(), func() {}
	}

	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	schemaCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := repository.EnsureSchema(schemaCtx, db); err != nil {
		db.Close()
		logger.Fatal("Failed to prepare database schema", zap.Error(err))
	}

	logger.Info("Database connected successfully")
	return repository.NewRepository(db, logger), db.Close
}

// initLocker shares venue locks through redis when configured so that
// several instances can take bookings for the same venues.
func initLocker(ctx context.Context, config *utils.Config, logger *zap.Logger) lock.VenueLocker {
	if config.Redis.URL == "" {
		return lock.NewLocalLocker()
	}

	client, err := lock.NewRedisClient(config.Redis.URL)
	if err != nil {
		logger.Fatal("Failed to configure redis", zap.Error(err))
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Fatal("Failed to ping redis", zap.Error(err))
	}

	logger.Info("Redis venue lock enabled", zap.Duration("ttl", config.Redis.LockTTL))
	return lock.NewRedisLocker(client, config.Redis.LockTTL)
}

func initPublisher(config *utils.Config, logger *zap.Logger) events.Publisher {
	if config.RabbitMQ.URL == "" {
		return events.NewLogPublisher(logger)
	}

	publisher, err := events.NewRabbitPublisher(config.RabbitMQ.URL, config.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal("Failed to connect to rabbitmq", zap.Error(err))
	}

	logger.Info("Publishing booking events", zap.String("exchange", config.RabbitMQ.Exchange))
	return publisher
}
