package stats

import (
	"bikeshare-explorer/internal/dataset"
	"bikeshare-explorer/internal/domain"
)

// StationStats holds the most popular stations and trip.
type StationStats struct {
	Trips                  int
	MostCommonStartStation Mode[string]
	MostCommonEndStation   Mode[string]
	MostCommonTrip         Mode[domain.StationPair]
}

// Empty reports whether the table had no trips.
func (s StationStats) Empty() bool { return s.Trips == 0 }

// Stations computes start, end and start-end pair modes.
// Pairs are counted on a structured key, never a joined string.
func Stations(t *dataset.Table) StationStats {
	n := t.Len()
	byName := func(a, b string) bool { return a < b }
	return StationStats{
		Trips:                  n,
		MostCommonStartStation: mode(n, func(i int) string { return t.At(i).StartStation }, byName),
		MostCommonEndStation:   mode(n, func(i int) string { return t.At(i).EndStation }, byName),
		MostCommonTrip: mode(n,
			func(i int) domain.StationPair { return t.At(i).Pair() },
			func(a, b domain.StationPair) bool { return a.Less(b) }),
	}
}
