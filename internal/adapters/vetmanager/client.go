// Package vetmanager implementa gateway.Gateway contra la REST API de Vetmanager.
package vetmanager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vetmanager-api-gateway/internal/domain/payload"
	"vetmanager-api-gateway/internal/middleware"
	"vetmanager-api-gateway/internal/platform/httpclient"
	"vetmanager-api-gateway/internal/ports/gateway"
)

const HeaderAPIKey = "X-REST-API-KEY"

// Client hace GET {base}/rest/api/{route}?{query}.
type Client struct {
	http *httpclient.Client
}

var _ gateway.Gateway = (*Client)(nil)

func New(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	hc.Headers[HeaderAPIKey] = apiKey
	return NewWithHTTP(hc), nil
}

// NewWithHTTP usa un httpclient ya armado (tests, transport instrumentado).
func NewWithHTTP(hc *httpclient.Client) *Client {
	return &Client{http: hc}
}

func (c *Client) Get(ctx context.Context, route gateway.Route, query string) ([]payload.Raw, error) {
	var env envelope
	headers := map[string]string{
		middleware.HeaderRequestID: middleware.CorrelationID(ctx),
	}

	err := c.http.GetJSON(ctx, "/rest/api/"+string(route), query, headers, &env)
	switch {
	case err == nil:
	case errors.Is(err, httpclient.ErrEmptyBody):
		return nil, fmt.Errorf("%w: %s", gateway.ErrResponseEmpty, route)
	case errors.Is(err, httpclient.ErrDecode), errors.Is(err, httpclient.ErrTooLarge):
		return nil, fmt.Errorf("%w: %s: %v", gateway.ErrResponseFormat, route, err)
	default:
		return nil, fmt.Errorf("%w: %s: %w", gateway.ErrRequest, route, err)
	}

	return env.items(route)
}

func (c *Client) GetWithFilter(ctx context.Context, route gateway.Route, filter gateway.Filter) ([]payload.Raw, error) {
	return c.Get(ctx, route, filter.Encode())
}
