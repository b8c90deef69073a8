package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"bikeshare-explorer/internal/dataset"
	"bikeshare-explorer/internal/domain"
	"bikeshare-explorer/internal/observability"
	"bikeshare-explorer/internal/storage"
	"bikeshare-explorer/internal/storage/memory"
)

// stepClock advances by one second on every call.
func stepClock() func() time.Time {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func fixtureLoader(t *testing.T) *dataset.Loader {
	t.Helper()
	store := memory.NewTripStore()
	if err := memory.LoadFixtures(store); err != nil {
		t.Fatalf("LoadFixtures failed: %v", err)
	}
	return dataset.NewLoader(store)
}

func TestOpen_AppliesFilterOnce(t *testing.T) {
	ctx := context.Background()
	filter, err := domain.NewFilterSpec("jan", "all")
	if err != nil {
		t.Fatalf("NewFilterSpec failed: %v", err)
	}

	metrics := observability.NewMetrics("test", nil)
	s, err := Open(ctx, fixtureLoader(t), domain.CityChicago, filter, WithMetrics(metrics))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if s.City != domain.CityChicago || s.Filter != filter {
		t.Errorf("Unexpected session identity: %s %s", s.City, s.Filter)
	}
	if s.Loaded().Len() != 8 {
		t.Errorf("Loaded = %d trips, want 8", s.Loaded().Len())
	}
	// Three January trips in the chicago fixture.
	if s.Table().Len() != 3 {
		t.Errorf("Filtered = %d trips, want 3", s.Table().Len())
	}
	for _, trip := range s.Table().Trips() {
		if trip.Month() != time.January {
			t.Errorf("Trip outside filter: %v", trip.StartTime)
		}
	}

	if got := testutil.ToFloat64(metrics.RowsAfterFilter.WithLabelValues("chicago")); got != 3 {
		t.Errorf("rows_after_filter = %v, want 3", got)
	}
	if got := testutil.ToFloat64(metrics.SessionsOpened); got != 1 {
		t.Errorf("sessions opened = %v, want 1", got)
	}
}

func TestOpen_PropagatesLoadError(t *testing.T) {
	_, err := Open(context.Background(), dataset.NewLoader(memory.NewTripStore()), domain.CityChicago, domain.NoFilter())
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSession_TimedGroups(t *testing.T) {
	metrics := observability.NewMetrics("test", nil)
	table, err := fixtureLoader(t).Load(context.Background(), domain.CityWashington)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	s := New(table, domain.NoFilter(), WithMetrics(metrics), WithClock(stepClock()))

	temporal := s.Temporal()
	if temporal.Elapsed != time.Second {
		t.Errorf("Elapsed = %v, want 1s", temporal.Elapsed)
	}
	if temporal.Result.Trips != 5 {
		t.Errorf("Trips = %d, want 5", temporal.Result.Trips)
	}

	users := s.Users()
	if users.Result.Gender.Available || users.Result.BirthYear.Available {
		t.Error("washington has no gender or birth year")
	}

	_ = s.Stations()
	_ = s.Durations()

	for _, group := range []string{GroupTemporal, GroupStations, GroupDuration, GroupUsers} {
		if got := testutil.ToFloat64(metrics.GroupsRun.WithLabelValues(group)); got != 1 {
			t.Errorf("groups_computed_total{group=%q} = %v, want 1", group, got)
		}
	}
}

func TestSession_RawTrips(t *testing.T) {
	table, err := fixtureLoader(t).Load(context.Background(), domain.CityNewYorkCity)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	s := New(table, domain.NoFilter())

	first := s.RawTrips(0, 5)
	rest := s.RawTrips(5, 5)
	if len(first) != 5 || len(rest) != 1 {
		t.Errorf("pages = %d + %d, want 5 + 1", len(first), len(rest))
	}
	if first[0].StartStation != "Suffolk St & Stanton St" {
		t.Errorf("first row = %q, want source order", first[0].StartStation)
	}
	if s.ID == New(table, domain.NoFilter()).ID {
		t.Error("each session should get a fresh ID")
	}
}
