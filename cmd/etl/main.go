package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/dmarsh/coingecko-etl/internal/api"
	"github.com/dmarsh/coingecko-etl/internal/config"
	"github.com/dmarsh/coingecko-etl/internal/database"
	"github.com/dmarsh/coingecko-etl/internal/extract"
	"github.com/dmarsh/coingecko-etl/internal/load"
	"github.com/dmarsh/coingecko-etl/internal/pipeline"
	"github.com/dmarsh/coingecko-etl/internal/transform"
	"github.com/dmarsh/coingecko-etl/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/etl.yaml", "path to config file")
	limit := flag.Int("limit", 0, "override coins to fetch (0 = use config)")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting etl",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// .env is optional; the YAML references credentials as ${VAR}.
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}

	// Credentials are validated here, before any network or database
	// call is attempted.
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *limit > 0 {
		cfg.Pipeline.Limit = *limit
	}

	logger.Info("configuration loaded",
		"api_url", cfg.API.BaseURL,
		"limit", cfg.Pipeline.Limit,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("connecting to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	logger.Info("database connected")

	client := api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithAPIKey(cfg.API.APIKey),
		api.WithLogger(logger),
	)

	p := pipeline.New(
		extract.New(client, logger),
		transform.New(logger),
		load.New(pool, logger),
		cfg.Pipeline.Limit,
		logger,
	)

	if err := p.Run(ctx); err != nil {
		logger.Error("pipeline failed", "error", err)
		pool.Close()
		os.Exit(1)
	}

	logger.Info("etl finished")
}
