// Package session holds one analysis iteration: a city, a filter and the filtered table.
package session

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"bikeshare-explorer/internal/dataset"
	"bikeshare-explorer/internal/domain"
	"bikeshare-explorer/internal/observability"
	"bikeshare-explorer/internal/stats"
)

// Statistic group names used for logging and metrics.
const (
	GroupTemporal = "temporal"
	GroupStations = "stations"
	GroupDuration = "duration"
	GroupUsers    = "users"
)

// Timed is a statistic group result with the time it took to compute.
type Timed[T any] struct {
	Result  T
	Elapsed time.Duration
}

// Session is built fresh for every (city, filter) iteration and owns its table.
type Session struct {
	ID     uuid.UUID
	City   domain.City
	Filter domain.FilterSpec

	loaded *dataset.Table
	table  *dataset.Table

	metrics *observability.Metrics
	logger  *log.Logger
	clock   func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithMetrics records group durations.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock sets the time source for group timing.
func WithClock(clock func() time.Time) Option {
	return func(s *Session) { s.clock = clock }
}

// Open loads the city through the loader and applies the filter once.
func Open(ctx context.Context, loader *dataset.Loader, city domain.City, filter domain.FilterSpec, opts ...Option) (*Session, error) {
	table, err := loader.Load(ctx, city)
	if err != nil {
		return nil, err
	}
	return New(table, filter, opts...), nil
}

// New creates a session over an already loaded table.
func New(table *dataset.Table, filter domain.FilterSpec, opts ...Option) *Session {
	s := &Session{
		ID:     uuid.New(),
		City:   table.City(),
		Filter: filter,
		loaded: table,
		logger: log.New(io.Discard, "", 0),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.table = dataset.ApplyFilters(table, filter)
	s.metrics.SessionOpened()
	s.metrics.ObserveFilter(s.City.String(), s.table.Len())
	s.logger.Printf("session %s: %s %s -> %d of %d trips",
		s.ID, s.City, s.Filter, s.table.Len(), table.Len())
	return s
}

// Table returns the filtered table.
func (s *Session) Table() *dataset.Table { return s.table }

// Loaded returns the unfiltered table.
func (s *Session) Loaded() *dataset.Table { return s.loaded }

// Temporal computes the temporal statistic group.
func (s *Session) Temporal() Timed[stats.TemporalStats] {
	return run(s, GroupTemporal, stats.Temporal)
}

// Stations computes the station statistic group.
func (s *Session) Stations() Timed[stats.StationStats] {
	return run(s, GroupStations, stats.Stations)
}

// Durations computes the duration statistic group.
func (s *Session) Durations() Timed[stats.DurationStats] {
	return run(s, GroupDuration, stats.Durations)
}

// Users computes the user statistic group.
func (s *Session) Users() Timed[stats.UserStats] {
	return run(s, GroupUsers, stats.Users)
}

// RawTrips returns up to n filtered trips starting at offset, in source order.
func (s *Session) RawTrips(offset, n int) []domain.Trip {
	return s.table.Slice(offset, n)
}

func run[T any](s *Session, group string, compute func(*dataset.Table) T) Timed[T] {
	start := s.clock()
	result := compute(s.table)
	elapsed := s.clock().Sub(start)

	s.metrics.ObserveGroup(group, elapsed)
	s.logger.Printf("session %s: %s computed in %v", s.ID, group, elapsed)
	return Timed[T]{Result: result, Elapsed: elapsed}
}
