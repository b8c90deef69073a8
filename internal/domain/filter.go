package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidFilter is returned when a month or day selector is not recognised.
var ErrInvalidFilter = errors.New("invalid filter")

// FilterAll is the selector value meaning "no restriction".
const FilterAll = "all"

// FilterMonths are the months present in the trip history, January first.
var FilterMonths = []time.Month{
	time.January, time.February, time.March,
	time.April, time.May, time.June,
}

// MonthFilter selects one month or all months. The zero value selects all.
type MonthFilter struct {
	month time.Month
}

// AllMonths returns the unrestricted month selector.
func AllMonths() MonthFilter { return MonthFilter{} }

// OnlyMonth returns a selector for a single month.
func OnlyMonth(m time.Month) MonthFilter { return MonthFilter{month: m} }

// IsAll reports whether the selector places no restriction.
func (f MonthFilter) IsAll() bool { return f.month == 0 }

// Month returns the selected month; only meaningful when !IsAll().
func (f MonthFilter) Month() time.Month { return f.month }

// Matches reports whether a month passes the selector.
func (f MonthFilter) Matches(m time.Month) bool {
	return f.IsAll() || f.month == m
}

// String returns "all" or the lowercase month name.
func (f MonthFilter) String() string {
	if f.IsAll() {
		return FilterAll
	}
	return strings.ToLower(f.month.String())
}

// DayFilter selects one weekday or all days. The zero value selects all.
type DayFilter struct {
	name string // lowercase weekday name, empty for all
}

// AllDays returns the unrestricted day selector.
func AllDays() DayFilter { return DayFilter{} }

// OnlyDay returns a selector for a single weekday.
func OnlyDay(d time.Weekday) DayFilter {
	return DayFilter{name: strings.ToLower(d.String())}
}

// IsAll reports whether the selector places no restriction.
func (f DayFilter) IsAll() bool { return f.name == "" }

// Matches compares a weekday name case-insensitively.
func (f DayFilter) Matches(weekdayName string) bool {
	return f.IsAll() || strings.EqualFold(f.name, weekdayName)
}

// String returns "all" or the lowercase weekday name.
func (f DayFilter) String() string {
	if f.IsAll() {
		return FilterAll
	}
	return f.name
}

// FilterSpec is the immutable (month, day) selector pair for one session.
type FilterSpec struct {
	Month MonthFilter
	Day   DayFilter
}

// NoFilter returns the (all, all) spec.
func NoFilter() FilterSpec {
	return FilterSpec{}
}

// NewFilterSpec parses both selectors.
func NewFilterSpec(month, day string) (FilterSpec, error) {
	m, err := ParseMonthFilter(month)
	if err != nil {
		return FilterSpec{}, err
	}
	d, err := ParseDayFilter(day)
	if err != nil {
		return FilterSpec{}, err
	}
	return FilterSpec{Month: m, Day: d}, nil
}

// IsAll reports whether neither dimension is restricted.
func (f FilterSpec) IsAll() bool {
	return f.Month.IsAll() && f.Day.IsAll()
}

// String returns e.g. "month=january day=all".
func (f FilterSpec) String() string {
	return fmt.Sprintf("month=%s day=%s", f.Month, f.Day)
}

var monthAbbreviations = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
}

var dayAbbreviations = map[string]time.Weekday{
	"mon":   time.Monday,
	"tue":   time.Tuesday,
	"tues":  time.Tuesday,
	"wed":   time.Wednesday,
	"thu":   time.Thursday,
	"thur":  time.Thursday,
	"thurs": time.Thursday,
	"fri":   time.Friday,
	"sat":   time.Saturday,
	"sun":   time.Sunday,
}

// ParseMonthFilter accepts "all", a month name January-June, or its
// three-letter abbreviation, case-insensitively.
func ParseMonthFilter(s string) (MonthFilter, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == FilterAll {
		return AllMonths(), nil
	}
	if m, ok := monthAbbreviations[key]; ok {
		return OnlyMonth(m), nil
	}
	for _, m := range FilterMonths {
		if key == strings.ToLower(m.String()) {
			return OnlyMonth(m), nil
		}
	}
	return MonthFilter{}, fmt.Errorf("%w: month %q", ErrInvalidFilter, s)
}

// ParseDayFilter accepts "all", a weekday name, or a common abbreviation,
// case-insensitively.
func ParseDayFilter(s string) (DayFilter, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == FilterAll {
		return AllDays(), nil
	}
	if d, ok := dayAbbreviations[key]; ok {
		return OnlyDay(d), nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if key == strings.ToLower(d.String()) {
			return OnlyDay(d), nil
		}
	}
	return DayFilter{}, fmt.Errorf("%w: day %q", ErrInvalidFilter, s)
}
