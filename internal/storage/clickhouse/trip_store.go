package clickhouse

import (
	"context"
	"fmt"
	"strings"

	"bikeshare-explorer/internal/domain"
	"bikeshare-explorer/internal/storage"
)

// TripStore implements storage.RecordSource and storage.TripSink using ClickHouse.
// Each city lives in its own MergeTree <slug>_trips table ordered by row_id.
type TripStore struct {
	conn *Conn
}

// NewTripStore creates a new TripStore.
func NewTripStore(conn *Conn) *TripStore {
	return &TripStore{conn: conn}
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
		selects[i] = fmt.Sprintf("ifNull(toString(%s), '')", quoteIdent(col))
	}
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s ASC",
		strings.Join(selects, ", "), quoteIdent(table), quoteIdent(storage.RowIDColumn))

	rows, err := s.conn.Query(ctx, query)
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

// WriteTrips batch-inserts trips with row_id 1..n.
// MergeTree does not enforce uniqueness, so a non-empty table is rejected
// with ErrDuplicateKey before inserting.
func (s *TripStore) WriteTrips(ctx context.Context, city domain.City, schema domain.Schema, trips []domain.Trip) error {
	if !city.IsValid() {
		return storage.ErrInvalidInput
	}
	table := storage.TableName(city)

	columns, err := s.columns(ctx, table)
	if err != nil {
		return err
	}
	if len(columns) == 0 {
		return storage.ErrNotFound
	}

	var existing uint64
	if err := s.conn.QueryRow(ctx, fmt.Sprintf("SELECT count() FROM %s", quoteIdent(table))).Scan(&existing); err != nil {
		return fmt.Errorf("count %s: %w", table, err)
	}
	if existing > 0 {
		return storage.ErrDuplicateKey
	}
	if len(trips) == 0 {
		return nil
	}

	insertColumns := schema.Columns()
	quoted := []string{quoteIdent(storage.RowIDColumn)}
	for _, col := range insertColumns {
		quoted = append(quoted, quoteIdent(col))
	}

	batch, err := s.conn.PrepareBatch(ctx, fmt.Sprintf("INSERT INTO %s (%s)", quoteIdent(table), strings.Join(quoted, ", ")))
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for i, t := range trips {
		values := append([]any{uint64(i + 1)}, storage.TripValues(insertColumns, t)...)
		if err := batch.Append(values...); err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}

	return nil
}

// columns returns the table's data columns in position order, without row_id.
func (s *TripStore) columns(ctx context.Context, table string) ([]string, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT name
		FROM system.columns
		WHERE database = currentDatabase() AND table = ?
		ORDER BY position ASC
	`, table)
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

func quoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "\\`") + "`"
}
