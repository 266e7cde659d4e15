package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/internhub/marketplace-web/config"
	"github.com/internhub/marketplace-web/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logStartupInfo(ctx, logger, &cfg)

	return bootstrap.Run(ctx, &bootstrap.RunConfig{
		Config: &cfg,
		Logger: logger,
	})
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting internhub web",
		"addr", cfg.HTTP.Addr,
		"marketplace_api", cfg.Marketplace.BaseURL,
		"session_store", string(cfg.Session.Store),
		"dev", cfg.IsDev,
		"statsd", cfg.Observability.Metrics.IsEnabled(),
		"prometheus", cfg.Observability.Prometheus.Enabled)
}
