package domain

import "time"

// Column keys of the trip-history schema (snake case of the source headers).
const (
	ColumnStartTime    = "start_time"
	ColumnEndTime      = "end_time"
	ColumnTripDuration = "trip_duration"
	ColumnStartStation = "start_station"
	ColumnEndStation   = "end_station"
	ColumnUserType     = "user_type"
	ColumnGender       = "gender"
	ColumnBirthYear    = "birth_year"
)

// RequiredColumns must be present in every city dataset.
var RequiredColumns = []string{
	ColumnStartTime,
	ColumnStartStation,
	ColumnEndStation,
	ColumnTripDuration,
	ColumnUserType,
}

// OptionalColumns are absent entirely for some cities.
var OptionalColumns = []string{ColumnGender, ColumnBirthYear}

// Trip is one row of a city's trip history.
// Calendar fields are derived from StartTime on every call and never stored.
type Trip struct {
	StartTime    time.Time
	StartStation string
	EndStation   string
	TripDuration float64 // seconds, non-negative
	UserType     string

	Gender    string // valid only when HasGender
	HasGender bool

	BirthYear    int // valid only when HasBirthYear
	HasBirthYear bool
}

// Month returns the calendar month of the trip start (1-12).
func (t Trip) Month() time.Month {
	return t.StartTime.Month()
}

// Weekday returns the day of week of the trip start.
func (t Trip) Weekday() time.Weekday {
	return t.StartTime.Weekday()
}

// WeekdayName returns the full English day name ("Monday").
func (t Trip) WeekdayName() string {
	return t.StartTime.Weekday().String()
}

// Hour returns the hour of the trip start (0-23).
func (t Trip) Hour() int {
	return t.StartTime.Hour()
}

// Pair returns the trip's start/end station pair.
func (t Trip) Pair() StationPair {
	return StationPair{Start: t.StartStation, End: t.EndStation}
}

// StationPair is a structured start/end key. Two pairs are equal only when both
// station names match, so ("A", "B-C") and ("A-B", "C") never collide.
type StationPair struct {
	Start string
	End   string
}

// String renders the pair for display.
func (p StationPair) String() string {
	return p.Start + " -> " + p.End
}

// Less orders pairs by start station, then end station.
func (p StationPair) Less(o StationPair) bool {
	if p.Start != o.Start {
		return p.Start < o.Start
	}
	return p.End < o.End
}

// WeekdayIndex returns the Monday-first position of a weekday (Monday=0, Sunday=6).
func WeekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// Schema is the set of columns a dataset carries.
type Schema struct {
	columns map[string]bool
}

// NewSchema builds a schema from column keys.
func NewSchema(columns ...string) Schema {
	s := Schema{columns: make(map[string]bool, len(columns))}
	for _, c := range columns {
		s.columns[c] = true
	}
	return s
}

// HasColumn reports whether the column exists in the dataset.
func (s Schema) HasColumn(column string) bool {
	return s.columns[column]
}

// Columns returns the known schema columns present, required first.
func (s Schema) Columns() []string {
	var out []string
	for _, c := range RequiredColumns {
		if s.columns[c] {
			out = append(out, c)
		}
	}
	for _, c := range OptionalColumns {
		if s.columns[c] {
			out = append(out, c)
		}
	}
	return out
}
