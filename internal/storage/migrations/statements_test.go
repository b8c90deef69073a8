package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	input := `-- header comment
CREATE TABLE a (x Int32);

-- second
CREATE TABLE b (
    y String
);
`
	stmts := splitStatements(input)
	require.Len(t, stmts, 2)
	assert.Equal(t, "CREATE TABLE a (x Int32)", stmts[0])
	assert.True(t, strings.HasPrefix(stmts[1], "CREATE TABLE b ("))
	assert.NotContains(t, stmts[1], "--")
}

func TestSplitStatements_Empty(t *testing.T) {
	assert.Empty(t, splitStatements("-- only a comment\n\n"))
}

func TestValidateNoSemicolonInStrings(t *testing.T) {
	assert.NoError(t, validateNoSemicolonInStrings("SELECT 'a'; SELECT 'b'"))
	assert.NoError(t, validateNoSemicolonInStrings("SELECT 'it''s'; SELECT 1"))
	assert.Error(t, validateNoSemicolonInStrings("SELECT 'a;b'"))
}

func TestEmbeddedMigrations(t *testing.T) {
	for _, tc := range []struct {
		fsys fs.FS
		dir  string
	}{
		{PostgresFS, "postgres"},
		{ClickhouseFS, "clickhouse"},
		{SQLiteFS, "sqlite"},
	} {
		t.Run(tc.dir, func(t *testing.T) {
			files, err := migrationFiles(tc.fsys, tc.dir)
			require.NoError(t, err)
			require.NotEmpty(t, files)

			for _, f := range files {
				data, err := fs.ReadFile(tc.fsys, tc.dir+"/"+f)
				require.NoError(t, err)
				assert.NoError(t, validateNoSemicolonInStrings(string(data)), f)

				sql := string(data)
				for _, table := range []string{"chicago_trips", "new_york_city_trips", "washington_trips"} {
					assert.Contains(t, sql, table, f)
				}
			}
		})
	}
}

func TestDatabaseFromDSN(t *testing.T) {
	db, err := databaseFromDSN("clickhouse://localhost:9000/bikeshare")
	require.NoError(t, err)
	assert.Equal(t, "bikeshare", db)

	_, err = databaseFromDSN("clickhouse://localhost:9000")
	assert.Error(t, err)
}
