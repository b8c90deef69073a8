// Package migrations embeds and applies the trip table DDL for each SQL backend.
package migrations

import "embed"

// PostgresFS embeds all PostgreSQL migration files.
//
//go:embed postgres/*.sql
var PostgresFS embed.FS

// ClickhouseFS embeds all ClickHouse migration files.
//
//go:embed clickhouse/*.sql
var ClickhouseFS embed.FS

// SQLiteFS embeds all SQLite migration files.
//
//go:embed sqlite/*.sql
var SQLiteFS embed.FS
