package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"vetmanager-api-gateway/internal/domain/journal"
)

// DefaultJournalCapacity: el journal en memoria descarta lo más viejo al llenarse.
const DefaultJournalCapacity = 5000

type journalRepo struct {
	mu       sync.RWMutex
	entries  []journal.Entry
	capacity int
}

func NewJournalRepo(capacity int) journal.Repository {
	if capacity <= 0 {
		capacity = DefaultJournalCapacity
	}
	return &journalRepo{capacity: capacity}
}

func (r *journalRepo) Create(ctx context.Context, e journal.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("journal entry id required")
	}

	r.entries = append(r.entries, e)
	if over := len(r.entries) - r.capacity; over > 0 {
		r.entries = append(r.entries[:0:0], r.entries[over:]...)
	}
	return nil
}

func (r *journalRepo) ListRecent(ctx context.Context, limit int) ([]journal.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Último insertado primero; después orden estable por requested_at desc.
	out := make([]journal.Entry, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0; i-- {
		out = append(out, r.entries[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RequestedAt.After(out[j].RequestedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
