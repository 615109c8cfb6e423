package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "vetmanager-api-gateway/docs"
	"vetmanager-api-gateway/internal/domain/explorer"
	"vetmanager-api-gateway/internal/domain/journal"
	"vetmanager-api-gateway/internal/middleware"
	"vetmanager-api-gateway/internal/platform/logger"
	"vetmanager-api-gateway/internal/ports/gateway"
)

type Options struct {
	// Gateway ya decorado (observed/cached) por quien arma el router.
	Gateway gateway.Gateway

	// Opcional: sin journal no se monta /journal.
	Journal *journal.Service

	Log logger.Logger

	// Opcional: si viene, se expone en /metrics.
	Gatherer prometheus.Gatherer

	// Opcional: dependencias (Postgres, Redis). Si falla, /health responde 503.
	Health func(context.Context) error
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if opts.Health != nil {
			if err := opts.Health(req.Context()); err != nil {
				log.Error("health check failed", map[string]any{"error": err.Error()})
				http.Error(w, "unhealthy", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	if opts.Journal != nil {
		journal.RegisterRoutes(r, opts.Journal)
	}
	explorer.RegisterRoutes(r, explorer.NewService(opts.Gateway), log)

	return r
}
