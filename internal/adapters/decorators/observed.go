// Package decorators envuelve un gateway.Gateway con observabilidad y cache opcional.
// Ninguno cambia los errores: el caller recibe exactamente lo que devolvió el gateway de abajo.
package decorators

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"vetmanager-api-gateway/internal/domain/journal"
	"vetmanager-api-gateway/internal/domain/payload"
	"vetmanager-api-gateway/internal/middleware"
	"vetmanager-api-gateway/internal/platform/logger"
	"vetmanager-api-gateway/internal/platform/metrics"
	"vetmanager-api-gateway/internal/ports/gateway"
)

// TracerName es el scope de los spans de Observed.
const TracerName = "vetmanager-api-gateway/gateway"

// Journal es lo que Observed necesita del journal (lo cumple *journal.Service).
type Journal interface {
	Record(ctx context.Context, in journal.RecordInput) (journal.Entry, error)
}

type Observed struct {
	next    gateway.Gateway
	log     logger.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	journal Journal
}

type ObservedOption func(*Observed)

func WithMetrics(m *metrics.Metrics) ObservedOption {
	return func(o *Observed) { o.metrics = m }
}

func WithJournal(j Journal) ObservedOption {
	return func(o *Observed) { o.journal = j }
}

func WithTracer(t trace.Tracer) ObservedOption {
	return func(o *Observed) { o.tracer = t }
}

func NewObserved(next gateway.Gateway, log logger.Logger, opts ...ObservedOption) *Observed {
	if log == nil {
		log = logger.Nop()
	}
	o := &Observed{
		next:   next,
		log:    log,
		tracer: otel.Tracer(TracerName),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Observed) Get(ctx context.Context, route gateway.Route, query string) ([]payload.Raw, error) {
	return o.observe(ctx, route, query, func(ctx context.Context) ([]payload.Raw, error) {
		return o.next.Get(ctx, route, query)
	})
}

func (o *Observed) GetWithFilter(ctx context.Context, route gateway.Route, filter gateway.Filter) ([]payload.Raw, error) {
	return o.observe(ctx, route, filter.Encode(), func(ctx context.Context) ([]payload.Raw, error) {
		return o.next.GetWithFilter(ctx, route, filter)
	})
}

func (o *Observed) observe(ctx context.Context, route gateway.Route, query string, call func(context.Context) ([]payload.Raw, error)) ([]payload.Raw, error) {
	ctx, correlationID := middleware.EnsureCorrelationID(ctx)

	ctx, span := o.tracer.Start(ctx, "vetmanager.get "+string(route),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("vetmanager.route", string(route)),
			attribute.String("vetmanager.query", query),
			attribute.String("correlation_id", correlationID),
		),
	)
	defer span.End()

	start := time.Now()
	rows, err := call(ctx)
	elapsed := time.Since(start)

	outcome := classify(err)
	fields := map[string]any{
		"route":          string(route),
		"query":          query,
		"correlation_id": correlationID,
		"duration_ms":    elapsed.Milliseconds(),
		"outcome":        outcome,
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		fields["error"] = err.Error()
		o.log.Warn("vetmanager request failed", fields)
	} else {
		span.SetAttributes(attribute.Int("vetmanager.rows", len(rows)))
		span.SetStatus(codes.Ok, "")
		fields["rows"] = len(rows)
		o.log.Debug("vetmanager request", fields)
	}

	if o.metrics != nil {
		o.metrics.ObserveRequest(string(route), outcome, len(rows), start)
	}
	if o.journal != nil {
		if _, jerr := o.journal.Record(ctx, journal.RecordInput{
			CorrelationID: correlationID,
			Route:         string(route),
			Query:         query,
			Rows:          len(rows),
			Err:           err,
			Duration:      elapsed,
		}); jerr != nil {
			o.log.Error("journal write failed", map[string]any{"error": jerr.Error(), "correlation_id": correlationID})
		}
	}

	return rows, err
}

func classify(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.OutcomeCanceled
	case errors.Is(err, gateway.ErrResponseEmpty):
		return metrics.OutcomeResponseEmpty
	case errors.Is(err, gateway.ErrResponseFormat):
		return metrics.OutcomeResponseFormat
	default:
		return metrics.OutcomeRequestError
	}
}
