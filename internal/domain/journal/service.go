package journal

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RecordInput struct {
	CorrelationID string
	Route         string
	Query         string
	Rows          int
	Err           error
	Duration      time.Duration
}

// Record guarda un request terminado; RequestedAt es el inicio (now - duración).
func (s *Service) Record(ctx context.Context, in RecordInput) (Entry, error) {
	if strings.TrimSpace(in.Route) == "" {
		return Entry{}, ErrInvalidInput
	}

	e := Entry{
		ID:            uuid.NewString(),
		CorrelationID: in.CorrelationID,
		Route:         in.Route,
		Query:         in.Query,
		Rows:          in.Rows,
		Duration:      in.Duration,
		RequestedAt:   s.now().Add(-in.Duration).UTC(),
	}
	if in.Err != nil {
		e.Error = in.Err.Error()
		e.Rows = 0
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return s.repo.ListRecent(ctx, limit)
}
