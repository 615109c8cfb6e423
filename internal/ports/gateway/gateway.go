package gateway

//go:generate mockgen -source=gateway.go -destination=mocks/mocks.go -package=mocks Gateway

import (
	"context"
	"errors"

	"vetmanager-api-gateway/internal/domain/payload"
)

// Errores de transporte. Los adapters los devuelven envueltos (%w) y el core
// los propaga sin tocarlos.
var (
	ErrRequest        = errors.New("api request failed")
	ErrResponseEmpty  = errors.New("api response empty")
	ErrResponseFormat = errors.New("api response malformed")
)

// Gateway es la capacidad externa que hace los GET contra la API REST.
// Una lista vacía es una respuesta válida (no es ErrResponseEmpty).
type Gateway interface {
	// Get envía query tal cual (sin "?" inicial).
	Get(ctx context.Context, route Route, query string) ([]payload.Raw, error)
	GetWithFilter(ctx context.Context, route Route, filter Filter) ([]payload.Raw, error)
}
