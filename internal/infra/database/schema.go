package database

import (
	"context"
	"database/sql"
	"fmt"
)

// The same DDL is valid for PostgreSQL and SQLite.
const schema = `
CREATE TABLE IF NOT EXISTS tracker_kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// InitSchema creates the key/value table if it is missing.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}
