package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/user/idea-validator/internal/adapter/chromedp_scraper"
	"github.com/user/idea-validator/internal/adapter/openai"
	"github.com/user/idea-validator/internal/adapter/postgres"
	redis_adapter "github.com/user/idea-validator/internal/adapter/redis"
	"github.com/user/idea-validator/internal/adapter/serper"
	"github.com/user/idea-validator/internal/delivery/http/handler"
	"github.com/user/idea-validator/internal/delivery/http/router"
	"github.com/user/idea-validator/internal/usecase"
	"github.com/user/idea-validator/pkg/config"
	"github.com/user/idea-validator/pkg/logger"
	"github.com/user/idea-validator/pkg/metrics"
	"github.com/user/idea-validator/pkg/retry"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()

	// --- Logger ---
	logger.Init(os.Stdout, logger.ParseLevel(cfg.LogLevel))
	slog.Info("Logger initialized", "level", cfg.LogLevel)

	// --- Metrics ---
	metrics.Init()
	slog.Info("Metrics initialized")

	// --- Database Connections ---
	ctx := context.Background()

	// PostgreSQL
	pgConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB)
	dbpool, err := pgxpool.New(ctx, pgConnString)
	if err != nil {
		slog.Error("Unable to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbpool.Close()
	slog.Info("PostgreSQL connection pool established")

	// Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		slog.Error("Unable to connect to Redis", "error", err)
		os.Exit(1)
	}
	slog.Info("Redis connection established")

	// --- Repositories ---
	reportRepo := postgres.NewReportRepo(dbpool)
	if err := reportRepo.Init(ctx); err != nil {
		slog.Error("Unable to initialize report schema", "error", err)
		os.Exit(1)
	}
	searchCacheRepo := redis_adapter.NewSearchCacheRepo(rdb)
	generator := openai.NewGenerator(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.GenerationTimeout)
	searchProvider := serper.NewSearch(cfg.SerperAPIKey, cfg.SerperBaseURL, cfg.SearchTimeout)
	scraper, err := chromedp_scraper.NewScraper(cfg.ScrapeConcurrency, cfg.PageLoadTimeout)
	if err != nil {
		slog.Error("Unable to initialize scraper", "error", err)
		os.Exit(1)
	}

	// --- Use Cases ---
	retryCfg := retry.Config{MaxAttempts: cfg.RetryMaxAttempts, BaseDelay: cfg.RetryBaseDelay}
	normalizer := usecase.NewNormalizer(generator)
	gatherer := usecase.NewGatherer(searchProvider, searchCacheRepo, retryCfg, cfg.MaxSearchResults, cfg.SearchCacheTTL)
	extractor := usecase.NewExtractor(scraper, cfg.MaxScrapeURLs, cfg.ScrapeConcurrency)
	synthesizer := usecase.NewSynthesizer(generator)
	summarizer := usecase.NewSummarizer(generator)
	validator := usecase.NewValidator(normalizer, gatherer, extractor, synthesizer, summarizer, reportRepo)
	reportManager := usecase.NewReportManager(reportRepo)

	// --- HTTP Server ---
	apiHandler := handler.NewHandler(validator, reportManager, dbpool)
	httpRouter := router.New(apiHandler)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      httpRouter,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Minute, // validation runs block on external providers
		IdleTimeout:  120 * time.Second,
	}

	slog.Info("Starting server", "port", cfg.ServerPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Could not listen on port", "port", cfg.ServerPort, "error", err)
		os.Exit(1)
	}
}
