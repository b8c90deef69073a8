package stats

import (
	"time"

	moremath "github.com/aclements/go-moremath/stats"

	"bikeshare-explorer/internal/dataset"
)

// DurationStats holds total and average trip duration.
type DurationStats struct {
	Trips        int
	TotalSeconds float64       // exact sum of trip_duration
	Total        time.Duration // TotalSeconds truncated to whole seconds
	Average      time.Duration // mean truncated toward zero; valid only when HasAverage
	HasAverage   bool
}

// Empty reports whether the table had no trips.
func (s DurationStats) Empty() bool { return s.Trips == 0 }

// Durations sums and averages trip_duration.
// An empty table has a zero total and no average.
func Durations(t *dataset.Table) DurationStats {
	n := t.Len()
	if n == 0 {
		return DurationStats{}
	}

	sample := moremath.Sample{Xs: make([]float64, n)}
	for i := 0; i < n; i++ {
		sample.Xs[i] = t.At(i).TripDuration
	}

	sum := sample.Sum()
	return DurationStats{
		Trips:        n,
		TotalSeconds: sum,
		Total:        wholeSeconds(sum),
		Average:      wholeSeconds(sample.Mean()),
		HasAverage:   true,
	}
}

// wholeSeconds truncates toward zero, like int(seconds).
func wholeSeconds(seconds float64) time.Duration {
	return time.Duration(int64(seconds)) * time.Second
}
