package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics cubre los requests salientes a la API de Vetmanager.
type Metrics struct {
	GatewayRequests *prometheus.CounterVec
	GatewayDuration *prometheus.HistogramVec
	GatewayRows     *prometheus.HistogramVec
	CacheLookups    *prometheus.CounterVec
}

// New registra las métricas en reg; nil usa el registry default.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		GatewayRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vetmanager_gateway_requests_total",
			Help: "Total de requests a la API de Vetmanager por ruta y resultado",
		}, []string{"route", "outcome"}),
		GatewayDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vetmanager_gateway_request_duration_seconds",
			Help:    "Duración de los requests a la API de Vetmanager",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"route"}),
		GatewayRows: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vetmanager_gateway_rows",
			Help:    "Filas devueltas por request",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}, []string{"route"}),
		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vetmanager_gateway_cache_lookups_total",
			Help: "Lecturas de la cache de respuestas (hit/miss)",
		}, []string{"route", "result"}),
	}
}

// ObserveRequest registra un request terminado.
// Call with time.Now() at the start of the request.
func (m *Metrics) ObserveRequest(route, outcome string, rows int, start time.Time) {
	m.GatewayRequests.WithLabelValues(route, outcome).Inc()
	m.GatewayDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	if outcome == OutcomeOK {
		m.GatewayRows.WithLabelValues(route).Observe(float64(rows))
	}
}

func (m *Metrics) CacheHit(route string)  { m.CacheLookups.WithLabelValues(route, "hit").Inc() }
func (m *Metrics) CacheMiss(route string) { m.CacheLookups.WithLabelValues(route, "miss").Inc() }

const (
	OutcomeOK             = "ok"
	OutcomeRequestError   = "request_error"
	OutcomeResponseEmpty  = "response_empty"
	OutcomeResponseFormat = "response_format"
	OutcomeCanceled       = "canceled"
)
