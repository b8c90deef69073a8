package dataset

import "bikeshare-explorer/internal/domain"

// Table is an ordered, read-only collection of trips for one city.
// Filtering produces a new Table; an existing Table is never mutated.
type Table struct {
	city   domain.City
	schema domain.Schema
	trips  []domain.Trip
}

// NewTable builds a table from trips in order. The slice is copied.
func NewTable(city domain.City, schema domain.Schema, trips []domain.Trip) *Table {
	return &Table{
		city:   city,
		schema: schema,
		trips:  append([]domain.Trip(nil), trips...),
	}
}

// City returns the city the table was loaded for.
func (t *Table) City() domain.City { return t.city }

// Schema returns the columns present in the source dataset.
func (t *Table) Schema() domain.Schema { return t.schema }

// Len returns the number of trips.
func (t *Table) Len() int { return len(t.trips) }

// At returns the i-th trip.
func (t *Table) At(i int) domain.Trip { return t.trips[i] }

// Trips returns a copy of all trips in order.
func (t *Table) Trips() []domain.Trip {
	return append([]domain.Trip(nil), t.trips...)
}

// Slice returns up to n trips starting at offset, in order.
// Out-of-range offsets yield an empty slice.
func (t *Table) Slice(offset, n int) []domain.Trip {
	if offset < 0 || n <= 0 || offset >= len(t.trips) {
		return nil
	}
	if n > len(t.trips)-offset {
		n = len(t.trips) - offset
	}
	return append([]domain.Trip(nil), t.trips[offset:offset+n]...)
}
