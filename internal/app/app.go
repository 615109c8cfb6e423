// Package app arma el gateway decorado a partir de la config; lo usan el server y vetctl.
package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"vetmanager-api-gateway/internal/adapters/decorators"
	mem "vetmanager-api-gateway/internal/adapters/storage/memory"
	pg "vetmanager-api-gateway/internal/adapters/storage/postgres"
	rediscache "vetmanager-api-gateway/internal/adapters/storage/redis"
	"vetmanager-api-gateway/internal/adapters/vetmanager"
	"vetmanager-api-gateway/internal/domain/journal"
	"vetmanager-api-gateway/internal/platform/config"
	"vetmanager-api-gateway/internal/platform/logger"
	"vetmanager-api-gateway/internal/platform/metrics"
	"vetmanager-api-gateway/internal/platform/redis"
	"vetmanager-api-gateway/internal/platform/tracing"
	"vetmanager-api-gateway/internal/ports/cache"
	"vetmanager-api-gateway/internal/ports/gateway"
)

type App struct {
	Gateway  gateway.Gateway
	Journal  *journal.Service // nil si JOURNAL_ENABLED=false
	Registry *prometheus.Registry
	Tracer   *sdktrace.TracerProvider

	checks  []func(context.Context) error
	closers []func() error
}

// Build: vetmanager -> Observed (logs, métricas, spans, journal) -> Cached (opcional).
// Los hits de cache no pasan por Observed.
// traceOpts se pasan al TracerProvider (tests: tracetest.NewSpanRecorder).
func Build(ctx context.Context, cfg config.Config, log logger.Logger, traceOpts ...sdktrace.TracerProviderOption) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &App{Registry: prometheus.NewRegistry()}
	m := metrics.New(a.Registry)

	upstream, err := vetmanager.New(cfg.BaseURL, cfg.APIKey, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	tp, err := tracing.New(ctx, tracing.Config{
		ServiceName: cfg.ServiceName,
		Endpoint:    cfg.OTLPEndpoint,
		Insecure:    cfg.OTLPInsecure,
		SampleRate:  cfg.TraceSampleRate,
	}, traceOpts...)
	if err != nil {
		return nil, err
	}
	a.Tracer = tp
	a.closers = append(a.closers, func() error { return tp.Shutdown(context.Background()) })
	if cfg.OTLPEndpoint != "" {
		log.Info("tracing to otlp", map[string]any{"endpoint": cfg.OTLPEndpoint, "sample_rate": cfg.TraceSampleRate})
	}

	opts := []decorators.ObservedOption{
		decorators.WithMetrics(m),
		decorators.WithTracer(tp.Tracer(decorators.TracerName)),
	}
	if cfg.JournalEnabled {
		repo, err := a.journalRepo(ctx, cfg, log)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.Journal = journal.NewService(repo)
		opts = append(opts, decorators.WithJournal(a.Journal))
	}
	var gw gateway.Gateway = decorators.NewObserved(upstream, log, opts...)

	if cfg.CacheTTL > 0 {
		store, err := a.cacheStore(ctx, cfg, log)
		if err != nil {
			a.Close()
			return nil, err
		}
		gw = decorators.NewCached(gw, store, cfg.CacheTTL, log, m)
	}

	a.Gateway = gw
	return a, nil
}

func (a *App) journalRepo(ctx context.Context, cfg config.Config, log logger.Logger) (journal.Repository, error) {
	if cfg.DBDSN == "" {
		log.Info("journal in memory", nil)
		return mem.NewJournalRepo(mem.DefaultJournalCapacity), nil
	}

	db, err := pg.Open(ctx, cfg.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}
	a.closers = append(a.closers, db.Close)
	a.checks = append(a.checks, db.PingContext)
	if err := pg.EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("journal schema: %w", err)
	}
	log.Info("journal in postgres", nil)
	return pg.NewJournalRepo(db), nil
}

func (a *App) cacheStore(ctx context.Context, cfg config.Config, log logger.Logger) (cache.Store, error) {
	rc, err := redis.New(ctx, cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	if rc == nil {
		log.Info("response cache in memory", map[string]any{"ttl": cfg.CacheTTL.String()})
		return mem.NewResponseCache(), nil
	}
	a.closers = append(a.closers, rc.Close)
	a.checks = append(a.checks, rc.Health)
	log.Info("response cache in redis", map[string]any{"ttl": cfg.CacheTTL.String()})
	return rediscache.NewResponseCache(rc.Client), nil
}

// Health revisa las dependencias configuradas (Postgres, Redis); nil si no hay ninguna.
func (a *App) Health(ctx context.Context) error {
	for _, check := range a.checks {
		if err := check(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Close libera DB y Redis; se puede llamar más de una vez.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
	a.closers = nil
}
