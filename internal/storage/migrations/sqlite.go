package migrations

import (
	"context"
	"fmt"
	"io/fs"

	"bikeshare-explorer/internal/storage/sqlite"
)

// RunSQLiteMigrations applies all embedded SQL files in lexical order,
// one statement at a time.
func RunSQLiteMigrations(ctx context.Context, db *sqlite.DB) error {
	files, err := migrationFiles(SQLiteFS, "sqlite")
	if err != nil {
		return fmt.Errorf("read embedded sqlite migrations: %w", err)
	}

	for _, file := range files {
		data, err := fs.ReadFile(SQLiteFS, "sqlite/"+file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		if err := validateNoSemicolonInStrings(string(data)); err != nil {
			return fmt.Errorf("validate migration %s: %w", file, err)
		}
		for _, stmt := range splitStatements(string(data)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("apply migration %s: %w", file, err)
			}
		}
	}
	return nil
}
