package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"clipfund/internal/adapter/metadata"
	"clipfund/internal/adapter/payment"
	"clipfund/internal/adapter/postgres"
	"clipfund/internal/adapter/usecase"
	"clipfund/internal/config"
	"clipfund/internal/core/port"
	"clipfund/internal/db"

	httpadapter "clipfund/internal/adapter/http"
)

// main is the entry point of the clipfund service. It loads configuration,
// optionally runs database migrations, initializes the database pool,
// repositories and external adapters, then starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.RunSeed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	campaignRepo := postgres.NewCampaignRepository(pool)
	submissionRepo := postgres.NewSubmissionRepository(pool)

	processor := payment.NewClient(cfg.Payment)

	var metrics port.MetadataSource = metadata.NewSource(cfg.Metadata, nil, logger)
	if cfg.Redis.Address != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		metrics = metadata.NewCache(metrics, rdb, cfg.Redis.CacheTTL, logger)
		logger.Info("metrics cache enabled", slog.String("addr", cfg.Redis.Address))
	}

	campaignSvc := usecase.NewCampaignService(campaignRepo, submissionRepo)
	fundingSvc := usecase.NewFundingService(campaignRepo, processor, logger)
	submissionSvc := usecase.NewSubmissionService(campaignRepo, submissionRepo, metrics, logger)

	handler := httpadapter.NewHandler(campaignSvc, fundingSvc, submissionSvc,
		cfg.Payment.WebhookSecret, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
