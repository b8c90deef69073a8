// Package sqlite stores city trip tables in a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// DB wraps sql.DB for dependency injection.
type DB struct {
	*sql.DB
}

// Open opens (creating if needed) the SQLite database at path.
func Open(ctx context.Context, path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// A single connection keeps ":memory:" databases shared across queries.
	db.SetMaxOpenConns(1)

	// Verify connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &DB{DB: db}, nil
}
