package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"learning_tracker/internal/domain/progress"
)

// Dialect selects the placeholder style of the SQL driver.
type Dialect int

const (
	DialectPostgres Dialect = iota
	DialectSQLite
)

type kvQueries struct {
	get string
	set string
}

func queriesFor(d Dialect) kvQueries {
	if d == DialectSQLite {
		return kvQueries{
			get: `SELECT value FROM tracker_kv WHERE key = ?`,
			set: `INSERT INTO tracker_kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			       ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		}
	}
	return kvQueries{
		get: `SELECT value FROM tracker_kv WHERE key = $1`,
		set: `INSERT INTO tracker_kv (key, value, updated_at) VALUES ($1, $2, NOW())
		       ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
	}
}

// KVRepository implements progress.Store on top of a SQL table.
type KVRepository struct {
	db      *sql.DB
	queries kvQueries
}

func NewKVRepository(db *sql.DB, dialect Dialect) *KVRepository {
	return &KVRepository{db: db, queries: queriesFor(dialect)}
}

func (r *KVRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, r.queries.get, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", progress.ErrNotFound
		}
		return "", fmt.Errorf("error getting key %q: %w", key, err)
	}
	return value, nil
}

func (r *KVRepository) Set(ctx context.Context, key, value string) error {
	if _, err := r.db.ExecContext(ctx, r.queries.set, key, value); err != nil {
		return fmt.Errorf("error setting key %q: %w", key, err)
	}
	return nil
}
