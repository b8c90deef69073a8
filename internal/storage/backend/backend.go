// Package backend opens the record source or trip sink selected by configuration.
package backend

import (
	"context"
	"fmt"

	"bikeshare-explorer/internal/config"
	"bikeshare-explorer/internal/storage"
	chstore "bikeshare-explorer/internal/storage/clickhouse"
	"bikeshare-explorer/internal/storage/file"
	"bikeshare-explorer/internal/storage/memory"
	"bikeshare-explorer/internal/storage/migrations"
	pgstore "bikeshare-explorer/internal/storage/postgres"
	"bikeshare-explorer/internal/storage/sqlite"
)

// CloseFunc releases a backend's connections. It is never nil.
type CloseFunc func()

func noop() {}

// OpenSource returns the record source for cfg.Kind.
// The memory kind is seeded with the built-in fixtures.
func OpenSource(ctx context.Context, cfg config.SourceConfig) (storage.RecordSource, CloseFunc, error) {
	switch cfg.Kind {
	case config.SourceCSV:
		return file.NewCSVSource(file.DefaultPaths(cfg.DataDir, file.FormatCSV)), noop, nil

	case config.SourceXLSX:
		return file.NewXLSXSource(file.DefaultPaths(cfg.DataDir, file.FormatXLSX)), noop, nil

	case config.SourceMemory:
		store := memory.NewTripStore()
		if err := memory.LoadFixtures(store); err != nil {
			return nil, nil, fmt.Errorf("load fixtures: %w", err)
		}
		return store, noop, nil

	case config.SourcePostgres:
		pool, err := pgstore.NewPool(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}
		return pgstore.NewTripStore(pool), pool.Close, nil

	case config.SourceClickHouse:
		conn, err := chstore.NewConn(ctx, cfg.ClickHouseDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to clickhouse: %w", err)
		}
		return chstore.NewTripStore(conn), func() { _ = conn.Close() }, nil

	case config.SourceSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewTripStore(db), func() { _ = db.Close() }, nil
	}
	return nil, nil, fmt.Errorf("%w: source kind %q", storage.ErrInvalidInput, cfg.Kind)
}

// OpenSink connects to the SQL backend for cfg.Kind and applies its migrations.
func OpenSink(ctx context.Context, cfg config.SourceConfig) (storage.TripSink, CloseFunc, error) {
	switch cfg.Kind {
	case config.SourcePostgres:
		pool, err := pgstore.NewPool(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}
		if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migrate postgres: %w", err)
		}
		return pgstore.NewTripStore(pool), pool.Close, nil

	case config.SourceClickHouse:
		conn, err := migrations.RunClickhouseMigrations(ctx, cfg.ClickHouseDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("migrate clickhouse: %w", err)
		}
		return chstore.NewTripStore(conn), func() { _ = conn.Close() }, nil

	case config.SourceSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := migrations.RunSQLiteMigrations(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		return sqlite.NewTripStore(db), func() { _ = db.Close() }, nil
	}
	return nil, nil, fmt.Errorf("%w: sink kind %q", storage.ErrInvalidInput, cfg.Kind)
}
