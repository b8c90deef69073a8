// Package dataset turns raw city datasets into typed trip tables and filters them.
package dataset

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"bikeshare-explorer/internal/domain"
	"bikeshare-explorer/internal/observability"
	"bikeshare-explorer/internal/storage"
)

// Loader reads a city's dataset from a record source and parses it into a Table.
type Loader struct {
	source  storage.RecordSource
	metrics *observability.Metrics
	logger  *log.Logger
	clock   func() time.Time
}

// NewLoader creates a loader over the given record source.
func NewLoader(source storage.RecordSource) *Loader {
	return &Loader{
		source: source,
		logger: log.New(io.Discard, "", 0),
		clock:  time.Now,
	}
}

// WithMetrics records load counts and durations.
func (l *Loader) WithMetrics(m *observability.Metrics) *Loader {
	l.metrics = m
	return l
}

// WithLogger sets the logger for load events.
func (l *Loader) WithLogger(logger *log.Logger) *Loader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// WithClock sets the time source used to measure loads.
func (l *Loader) WithClock(clock func() time.Time) *Loader {
	l.clock = clock
	return l
}

// Load reads every row for the city and parses it, preserving source order.
// Fails with a *MalformedTimestampError if any start_time cannot be parsed.
func (l *Loader) Load(ctx context.Context, city domain.City) (*Table, error) {
	if !city.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCity, city)
	}

	start := l.clock()
	ds, err := l.source.ReadDataset(ctx, city)
	if err != nil {
		l.metrics.ObserveLoadError(city.String())
		return nil, fmt.Errorf("read %s dataset: %w", city, err)
	}

	table, err := Parse(city, ds)
	if err != nil {
		l.metrics.ObserveLoadError(city.String())
		return nil, fmt.Errorf("parse %s dataset: %w", city, err)
	}

	elapsed := l.clock().Sub(start)
	l.metrics.ObserveLoad(city.String(), table.Len(), elapsed)
	l.logger.Printf("loaded %s: %d trips in %v", city, table.Len(), elapsed)
	return table, nil
}

// Parse converts a raw dataset into a Table.
// Unknown columns (such as an unnamed index column) are ignored.
func Parse(city domain.City, ds *storage.Dataset) (*Table, error) {
	if ds == nil {
		return nil, storage.ErrInvalidInput
	}

	index := make(map[string]int, len(ds.Columns))
	var present []string
	for i, h := range ds.Columns {
		key := normalizeColumn(h)
		if key == "" {
			continue
		}
		if _, dup := index[key]; dup {
			continue
		}
		index[key] = i
		present = append(present, key)
	}

	for _, col := range domain.RequiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}
	schema := domain.NewSchema(present...)
	genderIdx, hasGender := index[domain.ColumnGender]
	birthIdx, hasBirthYear := index[domain.ColumnBirthYear]

	cell := func(row []string, col string) string {
		i := index[col]
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	trips := make([]domain.Trip, 0, len(ds.Rows))
	for n, row := range ds.Rows {
		rowNum := n + 1

		raw := cell(row, domain.ColumnStartTime)
		startTime, err := ParseTimestamp(raw)
		if err != nil {
			return nil, &MalformedTimestampError{Row: rowNum, Value: raw}
		}

		duration, err := parseDuration(cell(row, domain.ColumnTripDuration))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		trip := domain.Trip{
			StartTime:    startTime,
			StartStation: cell(row, domain.ColumnStartStation),
			EndStation:   cell(row, domain.ColumnEndStation),
			TripDuration: duration,
			UserType:     cell(row, domain.ColumnUserType),
		}

		if hasGender && genderIdx < len(row) && row[genderIdx] != "" {
			trip.Gender = row[genderIdx]
			trip.HasGender = true
		}
		if hasBirthYear && birthIdx < len(row) {
			year, ok, err := parseBirthYear(row[birthIdx])
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", rowNum, err)
			}
			trip.BirthYear, trip.HasBirthYear = year, ok
		}

		trips = append(trips, trip)
	}

	return &Table{city: city, schema: schema, trips: trips}, nil
}
