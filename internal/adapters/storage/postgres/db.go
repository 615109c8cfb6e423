package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre un pool a Postgres usando pgx (database/sql).
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS gateway_journal (
	id             UUID PRIMARY KEY,
	correlation_id TEXT        NOT NULL DEFAULT '',
	route          TEXT        NOT NULL,
	query          TEXT        NOT NULL DEFAULT '',
	rows           INTEGER     NOT NULL DEFAULT 0,
	error          TEXT        NOT NULL DEFAULT '',
	duration_ms    BIGINT      NOT NULL,
	requested_at   TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS gateway_journal_requested_at_idx ON gateway_journal (requested_at DESC);
`

// EnsureSchema crea la tabla del journal si no existe.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
