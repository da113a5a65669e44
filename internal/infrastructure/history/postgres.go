package history

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"

	"github.com/pricelens/backend/internal/domain"
)

// PostgresStore persists search history to PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection, waits for the database to accept it,
// runs the schema migration and returns a ready store.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for attempt := 1; attempt <= 5; attempt++ {
		if err = db.PingContext(ctx); err == nil {
			break
		}
		log.Printf("[HISTORY] Postgres not ready (attempt %d): %v", attempt, err)
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * time.Second):
		}
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS search_history (
			id           UUID         PRIMARY KEY,
			country      TEXT         NOT NULL,
			query        TEXT         NOT NULL,
			family       VARCHAR(32)  NOT NULL DEFAULT '',
			source       VARCHAR(16)  NOT NULL,
			result_count INTEGER      NOT NULL DEFAULT 0,
			duration_ms  BIGINT       NOT NULL DEFAULT 0,
			searched_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW()
		);

		-- unsupported country codes are searched too, so the code is not length bound
		ALTER TABLE search_history ALTER COLUMN country TYPE TEXT;

		CREATE INDEX IF NOT EXISTS idx_search_history_searched_at ON search_history(searched_at DESC);
		CREATE INDEX IF NOT EXISTS idx_search_history_country     ON search_history(country);
	`)
	return err
}

// Save inserts a record; saving the same ID twice is a no-op
func (s *PostgresStore) Save(ctx context.Context, record *domain.SearchRecord) error {
	if record == nil {
		return nil
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO search_history (id, country, query, family, source, result_count, duration_ms, searched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING`,
		record.ID, record.Country, record.Query, string(record.Family), string(record.Source),
		record.ResultCount, record.DurationMs, record.SearchedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: insert search %s: %w", record.ID, err)
	}
	return nil
}

// Recent returns up to limit records, newest first
func (s *PostgresStore) Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, country, query, family, source, result_count, duration_ms, searched_at
		FROM search_history
		ORDER BY searched_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: query recent searches: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SearchRecord, 0, limit)
	for rows.Next() {
		var (
			r      domain.SearchRecord
			family string
			source string
		)
		if err := rows.Scan(&r.ID, &r.Country, &r.Query, &family, &source, &r.ResultCount, &r.DurationMs, &r.SearchedAt); err != nil {
			return nil, fmt.Errorf("postgres: scan search: %w", err)
		}
		r.Family = domain.Family(family)
		r.Source = domain.Source(source)
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close releases the connection pool
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
