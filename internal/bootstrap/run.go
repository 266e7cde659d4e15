package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/internhub/marketplace-web/config"
)

const backgroundStopTimeout = 5 * time.Second

// RunConfig contains what Run needs to start the web server.
type RunConfig struct {
	Config *config.AppConfig
	Logger *slog.Logger
}

// Run connects infrastructure, serves HTTP and blocks until a shutdown
// signal arrives, ctx is canceled, or the server fails.
func Run(ctx context.Context, cfg *RunConfig) error {
	if cfg == nil || cfg.Config == nil {
		return errors.New("run config missing AppConfig")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var redisClient redis.UniversalClient
	if cfg.Config.UsesRedis() {
		client, err := ConnectRedis(ctx, RedisOptions{Config: cfg.Config.Redis, Logger: logger})
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		redisClient = client
		defer func() {
			if closeErr := client.Close(); closeErr != nil {
				logger.Error("close redis", "error", closeErr)
			}
		}()
	}

	services, err := BuildServices(ServiceDeps{Config: cfg.Config, RedisClient: redisClient, Logger: logger})
	if err != nil {
		return fmt.Errorf("build services: %w", err)
	}
	defer func() {
		if closeErr := services.Observability.Close(); closeErr != nil {
			logger.Error("close metrics", "error", closeErr)
		}
	}()

	serviceCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	server, err := StartHTTPServer(&HTTPServerConfig{Config: cfg.Config, Services: services, Logger: logger}, errCh)
	if err != nil {
		return fmt.Errorf("start http server: %w", err)
	}

	sweeperDone := make(chan struct{})
	go func() {
		defer close(sweeperDone)
		runSessionSweeper(serviceCtx, services.MemoryStore, cfg.Config.Session.SweepInterval, services.Observability.Sink, logger)
	}()

	return waitForShutdown(shutdownConfig{
		ctx:        serviceCtx,
		cancel:     cancel,
		errCh:      errCh,
		server:     server,
		timeout:    cfg.Config.HTTP.ShutdownTimeout,
		background: sweeperDone,
		logger:     logger,
	})
}

type shutdownConfig struct {
	ctx        context.Context
	cancel     context.CancelFunc
	errCh      <-chan error
	server     *http.Server
	timeout    time.Duration
	background <-chan struct{}
	logger     *slog.Logger
}

// waitForShutdown waits for a signal, parent cancellation or a server error.
func waitForShutdown(cfg shutdownConfig) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		cfg.logger.Info("shutting down...")
		cfg.cancel()
		return gracefulStop(cfg)
	case <-cfg.ctx.Done():
		cfg.logger.Info("context canceled, shutting down...")
		return gracefulStop(cfg)
	case err := <-cfg.errCh:
		cfg.logger.Error("service error", "error", err)
		cfg.cancel()
		if stopErr := gracefulStop(cfg); stopErr != nil {
			cfg.logger.Error("graceful stop failed", "error", stopErr)
		}
		return err
	}
}

// gracefulStop drains the HTTP server then waits for background loops.
func gracefulStop(cfg shutdownConfig) error {
	if cfg.server != nil {
		// the service context may already be canceled; shutdown gets its own deadline
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(cfg.ctx), cfg.timeout)
		defer cancel()

		if err := ShutdownHTTPServer(ShutdownConfig{
			Context: shutdownCtx,
			Server:  cfg.server,
			Logger:  cfg.logger,
		}); err != nil {
			return err
		}
	}

	waitForService(cfg.background, "session sweeper", cfg.logger)
	return nil
}

// waitForService waits for a background loop to finish with timeout.
func waitForService(done <-chan struct{}, name string, logger *slog.Logger) {
	if done == nil {
		return
	}
	select {
	case <-done:
		logger.Info(name + " stopped")
	case <-time.After(backgroundStopTimeout):
		logger.Warn("timeout waiting for " + name + " to stop")
	}
}
