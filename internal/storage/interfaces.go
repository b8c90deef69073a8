package storage

import (
	"context"

	"bikeshare-explorer/internal/domain"
)

// Dataset is a raw trip-history table: a header row and string cells in source order.
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// Clone returns a deep copy of the dataset.
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return nil
	}
	out := &Dataset{
		Columns: append([]string(nil), d.Columns...),
		Rows:    make([][]string, len(d.Rows)),
	}
	for i, row := range d.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}

// RecordSource provides read access to one trip-history dataset per city.
type RecordSource interface {
	// ReadDataset returns every row for the city in stable source order.
	// Returns ErrNotFound if the backing file or table does not exist.
	ReadDataset(ctx context.Context, city domain.City) (*Dataset, error)
}

// TripSink stores parsed trips for a city. Used to seed SQL backends.
type TripSink interface {
	// WriteTrips appends trips in order, writing only the columns in schema.
	// Returns ErrDuplicateKey if the city's table already holds rows.
	WriteTrips(ctx context.Context, city domain.City, schema domain.Schema, trips []domain.Trip) error
}
