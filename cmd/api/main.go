package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"event-metrics-service/internal/config"
	"event-metrics-service/internal/health"
	"event-metrics-service/internal/logging"

	recordsHttp "event-metrics-service/internal/records/adapters/http/fiber"
	recordsRepoPg "event-metrics-service/internal/records/adapters/postgres"
	recordsUsecase "event-metrics-service/internal/records/core/usecase"

	metricsHttp "event-metrics-service/internal/metrics/adapters/http/fiber"
	metricsRepoPg "event-metrics-service/internal/metrics/adapters/postgres"
	metricsUsecase "event-metrics-service/internal/metrics/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "event-metrics-service/docs"
)

// @title Dashboard Metrics API
// @version 1.0
// @description Lead and demo intake plus time-bucketed dashboard metrics.
// @host localhost:8080
// @BasePath /
func main() {
	// .env is optional (local development)
	_ = godotenv.Load()

	logging.Init(os.Getenv("LOG_FORMAT"), logging.ParseLevel(os.Getenv("LOG_LEVEL")))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// DB connection
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		slog.Error("failed to open postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.PingContext(pingCtx)
	cancelPing()
	if err != nil {
		slog.Error("failed to ping postgres", "error", err)
		os.Exit(1)
	}

	// Repositories
	recordRepository := recordsRepoPg.NewRecordRepository(db)
	recordReader := metricsRepoPg.NewRecordRepository(metricsRepoPg.NewSQLDB(db))

	// Usecases
	loc := cfg.Dashboard.Location
	storeRecordUC := recordsUsecase.NewStoreRecordUseCase(recordRepository)
	getMetricsUC := metricsUsecase.NewGetMetricsUseCase(recordReader, func() time.Time {
		return time.Now().In(loc)
	})

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	// records endpoints
	recordsHandler := recordsHttp.NewRecordHandler(storeRecordUC)
	app.Post("/records", recordsHandler.CreateRecord)
	app.Post("/records/bulk", recordsHandler.BulkCreateRecords)

	// metrics endpoints
	metricsHandler := metricsHttp.NewMetricsHandler(getMetricsUC)
	app.Get("/metrics", metricsHandler.GetMetrics)

	app.Get("/healthz", health.NewHandler(db).Check)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- app.Listen(cfg.HTTP.Addr)
	}()

	slog.Info("server started",
		"addr", cfg.HTTP.Addr,
		"timezone", loc.String(),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		if err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("fiber stopped", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		slog.Error("fiber shutdown error", "error", err)
	}

	slog.Info("server exiting")
}
