package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"bikeshare-explorer/internal/domain"
	"bikeshare-explorer/internal/storage"
)

// TripStore implements storage.RecordSource and storage.TripSink using PostgreSQL.
// Each city lives in its own <slug>_trips table ordered by row_id.
type TripStore struct {
	pool *Pool
}

// NewTripStore creates a new TripStore.
func NewTripStore(pool *Pool) *TripStore {
	return &TripStore{pool: pool}
}

// Compile-time interface checks.
var (
	_ storage.RecordSource = (*TripStore)(nil)
	_ storage.TripSink     = (*TripStore)(nil)
)

// ReadDataset returns every row of the city's table as text cells, ordered by row_id.
// NULL values become empty cells. Returns ErrNotFound if the table does not exist.
func (s *TripStore) ReadDataset(ctx context.Context, city domain.City) (*storage.Dataset, error) {
	if !city.IsValid() {
		return nil, storage.ErrInvalidInput
	}
	table := storage.TableName(city)

	columns, err := s.columns(ctx, table)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, storage.ErrNotFound
	}

	selects := make([]string, len(columns))
	for i, col := range columns {
		selects[i] = textExpr(col)
	}
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s ASC",
		strings.Join(selects, ", "),
		pgx.Identifier{table}.Sanitize(),
		pgx.Identifier{storage.RowIDColumn}.Sanitize(),
	)

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		if isUndefinedTableError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	defer rows.Close()

	ds := &storage.Dataset{Columns: columns}
	for rows.Next() {
		row := make([]string, len(columns))
		dest := make([]any, len(columns))
		for i := range row {
			dest[i] = &row[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", table, err)
		}
		ds.Rows = append(ds.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", table, err)
	}

	return ds, nil
}

// WriteTrips copies trips into the city's table with row_id 1..n.
// Returns ErrDuplicateKey if the table already holds rows.
func (s *TripStore) WriteTrips(ctx context.Context, city domain.City, schema domain.Schema, trips []domain.Trip) error {
	if !city.IsValid() {
		return storage.ErrInvalidInput
	}
	table := storage.TableName(city)

	var existing int64
	err := s.pool.QueryRow(ctx, fmt.Sprintf("SELECT count(*) FROM %s", pgx.Identifier{table}.Sanitize())).Scan(&existing)
	if err != nil {
		if isUndefinedTableError(err) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("count %s: %w", table, err)
	}
	if existing > 0 {
		return storage.ErrDuplicateKey
	}
	if len(trips) == 0 {
		return nil
	}

	columns := schema.Columns()
	copyColumns := append([]string{storage.RowIDColumn}, columns...)

	rows := make([][]any, len(trips))
	for i, t := range trips {
		rows[i] = append([]any{int64(i + 1)}, storage.TripValues(columns, t)...)
	}

	_, err = s.pool.CopyFrom(ctx, pgx.Identifier{table}, copyColumns, pgx.CopyFromRows(rows))
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("copy into %s: %w", table, err)
	}
	return nil
}

// columns returns the table's data columns in ordinal order, without row_id.
func (s *TripStore) columns(ctx context.Context, table string) ([]string, error) {
	query := `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = $1
		ORDER BY ordinal_position ASC
	`

	rows, err := s.pool.Query(ctx, query, table)
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", table, err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan column name: %w", err)
		}
		if name != storage.RowIDColumn {
			columns = append(columns, name)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate column names: %w", err)
	}
	return columns, nil
}

// textExpr renders a column as non-null text. Timestamps use the canonical layout.
func textExpr(column string) string {
	ident := pgx.Identifier{column}.Sanitize()
	if column == domain.ColumnStartTime {
		return fmt.Sprintf("COALESCE(to_char(%s, 'YYYY-MM-DD HH24:MI:SS'), '')", ident)
	}
	return fmt.Sprintf("COALESCE(%s::text, '')", ident)
}
