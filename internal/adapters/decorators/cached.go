package decorators

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"vetmanager-api-gateway/internal/domain/payload"
	"vetmanager-api-gateway/internal/platform/logger"
	"vetmanager-api-gateway/internal/platform/metrics"
	"vetmanager-api-gateway/internal/ports/cache"
	"vetmanager-api-gateway/internal/ports/gateway"
)

// Cached guarda las respuestas por route+query durante ttl.
// Es opt-in: sin cache cada relación vuelve a pedir a la API.
// Los errores del gateway no se cachean; los de la store se loguean y se ignoran.
type Cached struct {
	next    gateway.Gateway
	store   cache.Store
	ttl     time.Duration
	log     logger.Logger
	metrics *metrics.Metrics
}

// NewCached devuelve next tal cual si ttl <= 0 o no hay store.
func NewCached(next gateway.Gateway, store cache.Store, ttl time.Duration, log logger.Logger, m *metrics.Metrics) gateway.Gateway {
	if ttl <= 0 || store == nil {
		return next
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Cached{next: next, store: store, ttl: ttl, log: log, metrics: m}
}

func (c *Cached) Get(ctx context.Context, route gateway.Route, query string) ([]payload.Raw, error) {
	return c.cached(ctx, route, query, func() ([]payload.Raw, error) {
		return c.next.Get(ctx, route, query)
	})
}

func (c *Cached) GetWithFilter(ctx context.Context, route gateway.Route, filter gateway.Filter) ([]payload.Raw, error) {
	return c.cached(ctx, route, filter.Encode(), func() ([]payload.Raw, error) {
		return c.next.GetWithFilter(ctx, route, filter)
	})
}

func (c *Cached) cached(ctx context.Context, route gateway.Route, query string, miss func() ([]payload.Raw, error)) ([]payload.Raw, error) {
	key := string(route) + "?" + query

	if b, ok, err := c.store.Get(ctx, key); err != nil {
		c.log.Warn("response cache read failed", map[string]any{"key": key, "error": err.Error()})
	} else if ok {
		rows, err := decodeRows(b)
		if err == nil {
			c.count(route, true)
			return rows, nil
		}
		c.log.Warn("response cache entry corrupt", map[string]any{"key": key, "error": err.Error()})
	}
	c.count(route, false)

	rows, err := miss()
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(rows)
	if err == nil {
		err = c.store.Set(ctx, key, b, c.ttl)
	}
	if err != nil {
		c.log.Warn("response cache write failed", map[string]any{"key": key, "error": err.Error()})
	}
	return rows, nil
}

func (c *Cached) count(route gateway.Route, hit bool) {
	if c.metrics == nil {
		return
	}
	if hit {
		c.metrics.CacheHit(string(route))
	} else {
		c.metrics.CacheMiss(string(route))
	}
}

// decodeRows usa UseNumber igual que el adapter HTTP.
func decodeRows(b []byte) ([]payload.Raw, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var rows []payload.Raw
	if err := dec.Decode(&rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []payload.Raw{}
	}
	return rows, nil
}
