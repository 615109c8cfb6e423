package decorators

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"

	"vetmanager-api-gateway/internal/adapters/storage/memory"
	"vetmanager-api-gateway/internal/domain/journal"
	"vetmanager-api-gateway/internal/domain/payload"
	"vetmanager-api-gateway/internal/middleware"
	"vetmanager-api-gateway/internal/platform/logger"
	"vetmanager-api-gateway/internal/platform/metrics"
	"vetmanager-api-gateway/internal/ports/gateway"
	"vetmanager-api-gateway/internal/ports/gateway/gatewaytest"
	"vetmanager-api-gateway/internal/ports/gateway/mocks"
)

func TestObserved_RecordsJournalAndMetrics(t *testing.T) {
	ctx := middleware.WithCorrelationID(context.Background(), "req-42")
	fake := gatewaytest.New().With(gateway.RouteClient, payload.Raw{"id": "1"})
	repo := memory.NewJournalRepo(0)
	m := metrics.New(prometheus.NewRegistry())

	gw := NewObserved(fake, logger.Nop(), WithJournal(journal.NewService(repo)), WithMetrics(m))

	rows, err := gw.GetWithFilter(ctx, gateway.RouteClient, gateway.Filter{}.WhereInt("id", 1))
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	entries, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "req-42", entries[0].CorrelationID)
	assert.Equal(t, "client", entries[0].Route)
	assert.Equal(t, gateway.Filter{}.WhereInt("id", 1).Encode(), entries[0].Query)
	assert.Equal(t, 1, entries[0].Rows)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.GatewayRequests.WithLabelValues("client", metrics.OutcomeOK)))
}

func TestObserved_ErrorsPassThroughUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockGateway(ctrl)
	boom := fmt.Errorf("%w: pet: timeout", gateway.ErrRequest)
	next.EXPECT().Get(gomock.Any(), gateway.RoutePet, "owner_id=3").Return(nil, boom)

	repo := memory.NewJournalRepo(0)
	m := metrics.New(prometheus.NewRegistry())
	gw := NewObserved(next, logger.Nop(), WithJournal(journal.NewService(repo)), WithMetrics(m))

	_, err := gw.Get(context.Background(), gateway.RoutePet, "owner_id=3")
	assert.Same(t, boom, err)

	entries, _ := repo.ListRecent(context.Background(), 10)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Failed())
	assert.NotEmpty(t, entries[0].CorrelationID, "sin id en el ctx se genera uno")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GatewayRequests.WithLabelValues("pet", metrics.OutcomeRequestError)))
}

func TestObserved_PropagatesCorrelationID(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockGateway(ctrl)
	next.EXPECT().Get(gomock.Any(), gateway.RouteUser, "").DoAndReturn(
		func(ctx context.Context, _ gateway.Route, _ string) ([]payload.Raw, error) {
			assert.NotEmpty(t, middleware.CorrelationID(ctx))
			return []payload.Raw{}, nil
		})

	_, err := NewObserved(next, nil).Get(context.Background(), gateway.RouteUser, "")
	assert.NoError(t, err)
}

func spanAttr(span sdktrace.ReadOnlySpan, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestObserved_Spans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	fake := gatewaytest.New().
		With(gateway.RoutePet, payload.Raw{"id": "20"}).
		Fail(gateway.RouteClient, fmt.Errorf("%w: client: 503", gateway.ErrRequest))
	gw := NewObserved(fake, logger.Nop(), WithTracer(tp.Tracer(TracerName)))

	ctx := middleware.WithCorrelationID(context.Background(), "req-span")
	_, err := gw.Get(ctx, gateway.RoutePet, "id=20")
	require.NoError(t, err)
	_, err = gw.Get(ctx, gateway.RouteClient, "id=10")
	require.Error(t, err)

	spans := rec.Ended()
	require.Len(t, spans, 2)

	ok := spans[0]
	assert.Equal(t, "vetmanager.get pet", ok.Name())
	assert.Equal(t, codes.Ok, ok.Status().Code)
	route, found := spanAttr(ok, "vetmanager.route")
	require.True(t, found)
	assert.Equal(t, "pet", route.AsString())
	rows, found := spanAttr(ok, "vetmanager.rows")
	require.True(t, found)
	assert.Equal(t, int64(1), rows.AsInt64())
	cid, found := spanAttr(ok, "correlation_id")
	require.True(t, found)
	assert.Equal(t, "req-span", cid.AsString())

	failed := spans[1]
	assert.Equal(t, "vetmanager.get client", failed.Name())
	assert.Equal(t, codes.Error, failed.Status().Code)
	assert.Equal(t, metrics.OutcomeRequestError, failed.Status().Description)
	route, _ = spanAttr(failed, "vetmanager.route")
	assert.Equal(t, "client", route.AsString())
	require.NotEmpty(t, failed.Events(), "el error queda como evento")
	assert.Equal(t, "exception", failed.Events()[0].Name)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, metrics.OutcomeOK, classify(nil))
	assert.Equal(t, metrics.OutcomeCanceled, classify(fmt.Errorf("x: %w", context.DeadlineExceeded)))
	assert.Equal(t, metrics.OutcomeResponseEmpty, classify(fmt.Errorf("%w: pet", gateway.ErrResponseEmpty)))
	assert.Equal(t, metrics.OutcomeResponseFormat, classify(gateway.ErrResponseFormat))
	assert.Equal(t, metrics.OutcomeRequestError, classify(errors.New("dial tcp")))
}

func TestCached_DisabledByDefault(t *testing.T) {
	fake := gatewaytest.New()
	assert.Same(t, gateway.Gateway(fake), NewCached(fake, memory.NewResponseCache(), 0, nil, nil))
	assert.Same(t, gateway.Gateway(fake), NewCached(fake, nil, time.Minute, nil, nil))
}

func TestCached_HitsSkipTheGateway(t *testing.T) {
	ctx := context.Background()
	fake := gatewaytest.New().With(gateway.RouteBreed, payload.Raw{"id": "1", "title": "Мейн-кун", "pet_type_id": "2"})
	m := metrics.New(prometheus.NewRegistry())
	gw := NewCached(fake, memory.NewResponseCache(), time.Minute, logger.Nop(), m)
	filter := gateway.Filter{}.WhereInt("id", 1)

	first, err := gw.GetWithFilter(ctx, gateway.RouteBreed, filter)
	require.NoError(t, err)
	second, err := gw.GetWithFilter(ctx, gateway.RouteBreed, filter)
	require.NoError(t, err)

	assert.Equal(t, 1, fake.CallCount())
	require.Len(t, second, 1)
	assert.Equal(t, first[0]["title"], second[0]["title"])
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("breed", "hit")))

	_, err = gw.GetWithFilter(ctx, gateway.RouteBreed, gateway.Filter{}.WhereInt("id", 2))
	require.NoError(t, err)
	assert.Equal(t, 2, fake.CallCount(), "otro filtro es otra key")
}

func TestCached_ErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	fake := gatewaytest.New().Fail(gateway.RoutePet, gateway.ErrResponseEmpty)
	gw := NewCached(fake, memory.NewResponseCache(), time.Minute, nil, nil)

	_, err := gw.Get(ctx, gateway.RoutePet, "id=1")
	assert.ErrorIs(t, err, gateway.ErrResponseEmpty)
	_, err = gw.Get(ctx, gateway.RoutePet, "id=1")
	assert.ErrorIs(t, err, gateway.ErrResponseEmpty)
	assert.Equal(t, 2, fake.CallCount())
}

func TestCached_KeepsJSONNumbers(t *testing.T) {
	rows, err := decodeRows([]byte(`[{"id":1,"balance":12.50}]`))
	require.NoError(t, err)
	c := payload.NewReader("Client", rows[0])
	assert.Equal(t, 1, c.Int("id"))
	assert.Equal(t, 12.5, c.Float("balance"))
	assert.NoError(t, c.Err())
}
