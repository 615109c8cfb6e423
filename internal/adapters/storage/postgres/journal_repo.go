package postgres

import (
	"context"
	"database/sql"
	"time"

	"vetmanager-api-gateway/internal/domain/journal"
)

type JournalRepo struct {
	db *sql.DB
}

func NewJournalRepo(db *sql.DB) *JournalRepo {
	return &JournalRepo{db: db}
}

func (r *JournalRepo) Create(ctx context.Context, e journal.Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO gateway_journal (
			id, correlation_id,
			route, query, rows,
			error, duration_ms, requested_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		e.ID,
		e.CorrelationID,
		e.Route,
		e.Query,
		e.Rows,
		e.Error,
		e.Duration.Milliseconds(),
		e.RequestedAt,
	)
	return err
}

func (r *JournalRepo) ListRecent(ctx context.Context, limit int) ([]journal.Entry, error) {
	if limit <= 0 {
		limit = journal.DefaultLimit
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, correlation_id,
			route, query, rows,
			error, duration_ms, requested_at
		FROM gateway_journal
		ORDER BY requested_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]journal.Entry, 0)
	for rows.Next() {
		var e journal.Entry
		var durMS int64
		if err := rows.Scan(
			&e.ID,
			&e.CorrelationID,
			&e.Route,
			&e.Query,
			&e.Rows,
			&e.Error,
			&durMS,
			&e.RequestedAt,
		); err != nil {
			return nil, err
		}
		e.Duration = time.Duration(durMS) * time.Millisecond
		e.RequestedAt = e.RequestedAt.UTC()
		out = append(out, e)
	}

	return out, rows.Err()
}
