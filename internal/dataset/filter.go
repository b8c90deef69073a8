package dataset

import "bikeshare-explorer/internal/domain"

// ApplyFilters returns a new table holding the trips that pass both selectors.
// Month is checked first, then weekday; survivors keep their relative order.
// (all, all) returns an equal copy. An empty result is a valid table.
func ApplyFilters(t *Table, spec domain.FilterSpec) *Table {
	out := &Table{
		city:   t.city,
		schema: t.schema,
		trips:  make([]domain.Trip, 0, len(t.trips)),
	}
	for _, trip := range t.trips {
		if !spec.Month.Matches(trip.Month()) {
			continue
		}
		if !spec.Day.Matches(trip.WeekdayName()) {
			continue
		}
		out.trips = append(out.trips, trip)
	}
	return out
}
