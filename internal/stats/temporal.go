package stats

import (
	"time"

	"bikeshare-explorer/internal/dataset"
	"bikeshare-explorer/internal/domain"
)

// TemporalStats holds the most frequent times of travel.
type TemporalStats struct {
	Trips             int
	MostCommonMonth   Mode[time.Month]
	MostCommonWeekday Mode[time.Weekday]
	MostCommonHour    Mode[int]
}

// Empty reports whether the table had no trips.
func (s TemporalStats) Empty() bool { return s.Trips == 0 }

// Temporal computes the month, weekday and start-hour modes.
func Temporal(t *dataset.Table) TemporalStats {
	n := t.Len()
	return TemporalStats{
		Trips: n,
		MostCommonMonth: mode(n,
			func(i int) time.Month { return t.At(i).Month() },
			func(a, b time.Month) bool { return a < b }),
		MostCommonWeekday: mode(n,
			func(i int) time.Weekday { return t.At(i).Weekday() },
			func(a, b time.Weekday) bool { return domain.WeekdayIndex(a) < domain.WeekdayIndex(b) }),
		MostCommonHour: mode(n,
			func(i int) int { return t.At(i).Hour() },
			func(a, b int) bool { return a < b }),
	}
}
