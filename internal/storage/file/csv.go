package file

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"bikeshare-explorer/internal/domain"
	"bikeshare-explorer/internal/storage"
)

// CSVSource implements storage.RecordSource over one CSV file per city.
// The first record is the header row.
type CSVSource struct {
	paths Paths
}

// NewCSVSource creates a CSV source for the given city paths.
func NewCSVSource(paths Paths) *CSVSource {
	return &CSVSource{paths: paths}
}

// Compile-time interface check.
var _ storage.RecordSource = (*CSVSource)(nil)

// ReadDataset reads the city's CSV file. Returns ErrNotFound if no file is configured or present.
func (s *CSVSource) ReadDataset(ctx context.Context, city domain.City) (*storage.Dataset, error) {
	path, ok := s.paths[city]
	if !ok {
		return nil, fmt.Errorf("%w: no csv path for %s", storage.ErrNotFound, city)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(ctx, f)
}

// ReadCSV parses a header row and all records from r.
// Unlike a lenient reader, a malformed record fails the whole read.
func ReadCSV(ctx context.Context, r io.Reader) (*storage.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty csv", storage.ErrInvalidInput)
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	ds := &storage.Dataset{Columns: header}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", len(ds.Rows)+1, err)
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}
