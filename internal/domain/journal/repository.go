package journal

import "context"

type Repository interface {
	Create(ctx context.Context, e Entry) error
	// ListRecent devuelve las últimas entradas, la más nueva primero.
	ListRecent(ctx context.Context, limit int) ([]Entry, error)
}
