package cache

import (
	"context"
	"time"
)

// Store guarda respuestas serializadas del gateway con expiración.
type Store interface {
	// Get devuelve ok=false si la key no existe o expiró.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
