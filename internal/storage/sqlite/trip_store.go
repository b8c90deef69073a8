package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bikeshare-explorer/internal/domain"
	"bikeshare-explorer/internal/storage"
)

// TripStore implements storage.RecordSource and storage.TripSink using SQLite.
type TripStore struct {
	db *DB
}

// NewTripStore creates a new TripStore.
func NewTripStore(db *DB) *TripStore {
	return &TripStore{db: db}
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
		selects[i] = fmt.Sprintf("COALESCE(CAST(%s AS TEXT), '')", quoteIdent(col))
	}
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s ASC",
		strings.Join(selects, ", "), quoteIdent(table), quoteIdent(storage.RowIDColumn))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
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

// WriteTrips inserts trips with row_id 1..n in one transaction.
// Returns ErrDuplicateKey if the table already holds rows.
func (s *TripStore) WriteTrips(ctx context.Context, city domain.City, schema domain.Schema, trips []domain.Trip) error {
	if !city.IsValid() {
		return storage.ErrInvalidInput
	}
	table := storage.TableName(city)

	existingColumns, err := s.columns(ctx, table)
	if err != nil {
		return err
	}
	if len(existingColumns) == 0 {
		return storage.ErrNotFound
	}

	var existing int64
	if err := s.db.QueryRowContext(ctx, fmt.Sprintf("SELECT count(*) FROM %s", quoteIdent(table))).Scan(&existing); err != nil {
		return fmt.Errorf("count %s: %w", table, err)
	}
	if existing > 0 {
		return storage.ErrDuplicateKey
	}
	if len(trips) == 0 {
		return nil
	}

	columns := schema.Columns()
	quoted := []string{quoteIdent(storage.RowIDColumn)}
	for _, col := range columns {
		quoted = append(quoted, quoteIdent(col))
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(quoted)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", quoteIdent(table), strings.Join(quoted, ", "), placeholders)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range trips {
		values := storage.TripValues(columns, t)
		for j, v := range values {
			// Timestamps are stored as canonical text.
			if ts, ok := v.(time.Time); ok {
				values[j] = ts.Format(storage.TimestampLayout)
			}
		}
		args := append([]any{int64(i + 1)}, values...)
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert %s row %d: %w", table, i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// columns returns the table's data columns in cid order, without row_id.
func (s *TripStore) columns(ctx context.Context, table string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", quoteIdent(table)))
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", table, err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue any
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("scan column info: %w", err)
		}
		if name != storage.RowIDColumn {
			columns = append(columns, name)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate column info: %w", err)
	}
	return columns, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
