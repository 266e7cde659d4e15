package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/internhub/marketplace-web/config"
	"github.com/internhub/marketplace-web/internal/adapters/marketplace"
	"github.com/internhub/marketplace-web/internal/adapters/memory"
	redisstore "github.com/internhub/marketplace-web/internal/adapters/redis"
	httpx "github.com/internhub/marketplace-web/internal/http"
	"github.com/internhub/marketplace-web/internal/observability/metrics"
	"github.com/internhub/marketplace-web/internal/observability/prom"
	"github.com/internhub/marketplace-web/internal/observability/statsd"
	"github.com/internhub/marketplace-web/internal/ports"
	"github.com/internhub/marketplace-web/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Sessions      *service.SessionService
	Internships   *service.InternshipService
	Favourites    *service.FavouriteService
	Applications  *service.ApplicationService
	Resumes       *service.ResumeService
	Notifications *service.NotificationService
	Organisations *service.OrganisationService
	Views         *service.ViewRegistry
	Limiter       *httpx.LoginLimiter
	Readiness     map[string]httpx.ReadinessCheck

	// MemoryStore is set when sessions live in process; it needs periodic sweeping.
	MemoryStore   *memory.SessionStore
	Observability ObservabilityContainer
}

// ObservabilityContainer groups shared observability dependencies.
type ObservabilityContainer struct {
	// Sink fans out to StatsD and Prometheus; nil when both are disabled.
	Sink   statsd.Sink
	Statsd *statsd.Client
	Prom   *prom.Metrics
}

// Close releases observability resources.
func (o ObservabilityContainer) Close() error {
	if o.Statsd == nil {
		return nil
	}
	return o.Statsd.Close()
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient // required when Session.Store is redis
	Logger      *slog.Logger
}

// buildObservability configures the StatsD client and Prometheus registry.
func buildObservability(logger *slog.Logger, cfg config.ObservabilityConfig) ObservabilityContainer {
	var out ObservabilityContainer
	sinks := make([]statsd.Sink, 0, 2)

	if cfg.Metrics.IsEnabled() {
		client, err := statsd.NewClient(statsd.Config{
			Enabled: true,
			Address: cfg.Metrics.StatsdAddress,
			Prefix:  cfg.Metrics.Prefix,
			Logger:  logger,
		})
		if err != nil {
			logger.Error("failed to initialise statsd client", "error", err)
		} else {
			out.Statsd = client
			sinks = append(sinks, client)
		}
	}

	if cfg.Prometheus.Enabled {
		out.Prom = prom.New(cfg.Prometheus.Namespace)
		sinks = append(sinks, out.Prom)
	}

	out.Sink = metrics.NewFanout(sinks...)
	return out
}

// buildSessionStore picks the configured session backend.
//
//nolint:ireturn // the store kind is chosen at runtime.
func buildSessionStore(deps ServiceDeps) (ports.SessionStore, *memory.SessionStore, error) {
	switch deps.Config.Session.Store {
	case config.SessionStoreMemory:
		store := memory.NewSessionStore()
		return store, store, nil
	case config.SessionStoreRedis:
		if deps.RedisClient == nil {
			return nil, nil, errors.New("redis session store requires a redis client")
		}
		return redisstore.NewSessionStoreWithPrefix(deps.RedisClient, deps.Config.Session.KeyPrefix), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", deps.Config.Session.Store)
	}
}

// BuildServices wires adapters into services. Nothing here starts goroutines.
func BuildServices(deps ServiceDeps) (*ServiceContainer, error) {
	if deps.Config == nil {
		return nil, errors.New("service deps missing AppConfig")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	obs := buildObservability(logger, cfg.Observability)

	client, err := marketplace.NewClient(marketplace.Config{
		BaseURL:          cfg.Marketplace.BaseURL,
		Timeout:          cfg.Marketplace.Timeout,
		ListItemsPath:    cfg.Marketplace.ListItemsPath,
		ErrorMessagePath: cfg.Marketplace.ErrorMessagePath,
		Metrics:          obs.Sink,
		Logger:           logger,
	})
	if err != nil {
		return nil, fmt.Errorf("marketplace client: %w", err)
	}

	store, memStore, err := buildSessionStore(deps)
	if err != nil {
		return nil, err
	}

	sessions := service.NewSessionService(service.SessionServiceOptions{
		Store:    store,
		Auth:     client,
		Profiles: client,
		Config: service.SessionConfig{
			TTL:             cfg.Session.TTL,
			SettleWait:      cfg.Session.SettleWait,
			RevalidateAfter: cfg.Session.RevalidateAfter,
			ValidateTimeout: cfg.Session.ValidateTimeout,
			TokenExpiry:     marketplace.TokenExpiry,
			Metrics:         obs.Sink,
			Logger:          logger,
		},
	})

	views := service.NewViewRegistry(service.ViewRegistryConfig{
		Capacity: cfg.Views.Capacity,
		TTL:      cfg.Views.TTL,
		Metrics:  obs.Sink,
	})

	return &ServiceContainer{
		Sessions:      sessions,
		Internships:   service.NewInternshipService(service.InternshipServiceOptions{API: client, Views: views}),
		Favourites:    service.NewFavouriteService(service.FavouriteServiceOptions{API: client, Views: views}),
		Applications:  service.NewApplicationService(service.ApplicationServiceOptions{API: client, Views: views}),
		Resumes:       service.NewResumeService(service.ResumeServiceOptions{API: client}),
		Notifications: service.NewNotificationService(service.NotificationServiceOptions{API: client, Logger: logger}),
		Organisations: service.NewOrganisationService(service.OrganisationServiceOptions{API: client, Views: views}),
		Views:         views,
		Limiter: httpx.NewLoginLimiter(httpx.LoginLimiterConfig{
			PerMinute:  cfg.LoginRate.PerMinute,
			Burst:      cfg.LoginRate.Burst,
			TrustProxy: cfg.LoginRate.TrustProxy,
		}),
		Readiness:     readinessChecks(deps.RedisClient, memStore),
		MemoryStore:   memStore,
		Observability: obs,
	}, nil
}

// readinessChecks reports the session backend. The marketplace API is not
// checked; an outage there degrades pages but the server can still render.
func readinessChecks(client redis.UniversalClient, memStore *memory.SessionStore) map[string]httpx.ReadinessCheck {
	checks := make(map[string]httpx.ReadinessCheck, 1)
	switch {
	case memStore != nil:
		checks["sessions"] = func(context.Context) error { return nil }
	case client != nil:
		checks["sessions"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
	}
	return checks
}

// runSessionSweeper purges expired in-process sessions until ctx is done.
func runSessionSweeper(ctx context.Context, store *memory.SessionStore, every time.Duration, sink statsd.Sink, logger *slog.Logger) {
	if store == nil {
		return
	}
	if every <= 0 {
		every = time.Minute
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Sweep(); n > 0 {
				logger.DebugContext(ctx, "swept expired sessions", "count", n)
			}
			if sink != nil {
				sink.Gauge("session.store.size", float64(store.Len()), map[string]string{"store": "memory"})
			}
		}
	}
}
