package reporting

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"bikeshare-explorer/internal/domain"
	"bikeshare-explorer/internal/session"
	"bikeshare-explorer/internal/stats"
)

// TextRenderer writes statistic groups for a terminal.
type TextRenderer struct {
	w          io.Writer
	showTiming bool
}

// NewTextRenderer creates a renderer. showTiming appends each group's compute time.
func NewTextRenderer(w io.Writer, showTiming bool) *TextRenderer {
	return &TextRenderer{w: w, showTiming: showTiming}
}

// Temporal writes the most frequent times of travel.
func (r *TextRenderer) Temporal(res session.Timed[stats.TemporalStats]) {
	s := res.Result
	fmt.Fprintln(r.w, "\nCalculating The Most Frequent Times of Travel...")
	fmt.Fprintln(r.w)
	if s.Empty() {
		fmt.Fprintf(r.w, "No trips match the selected filters: %s.\n", NoData)
	} else {
		fmt.Fprintln(r.w, "The most common month is", formatMode(s.MostCommonMonth, formatMonth))
		fmt.Fprintln(r.w, "The most common day is", formatMode(s.MostCommonWeekday, formatWeekday))
		fmt.Fprintln(r.w, "The most common start hour is", formatMode(s.MostCommonHour, formatHour))
	}
	r.footer(res.Elapsed.Seconds())
}

// Stations writes the most popular stations and trip.
func (r *TextRenderer) Stations(res session.Timed[stats.StationStats]) {
	s := res.Result
	fmt.Fprintln(r.w, "\nCalculating The Most Popular Stations and Trip...")
	fmt.Fprintln(r.w)
	if s.Empty() {
		fmt.Fprintf(r.w, "No trips match the selected filters: %s.\n", NoData)
	} else {
		fmt.Fprintln(r.w, "The most common start station:", formatMode(s.MostCommonStartStation, formatString))
		fmt.Fprintln(r.w, "The most common end station:", formatMode(s.MostCommonEndStation, formatString))
		fmt.Fprintln(r.w, "Most frequent combination of start and end stations:",
			formatMode(s.MostCommonTrip, domain.StationPair.String))
	}
	r.footer(res.Elapsed.Seconds())
}

// Durations writes total and average travel time.
func (r *TextRenderer) Durations(res session.Timed[stats.DurationStats]) {
	s := res.Result
	fmt.Fprintln(r.w, "\nCalculating Trip Duration...")
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "Total travel time:", FormatDuration(s.Total))
	if s.HasAverage {
		fmt.Fprintln(r.w, "Average travel time:", FormatDuration(s.Average))
	} else {
		fmt.Fprintln(r.w, "Average travel time:", NoData)
	}
	r.footer(res.Elapsed.Seconds())
}

// Users writes user type, gender and birth year statistics.
func (r *TextRenderer) Users(res session.Timed[stats.UserStats]) {
	s := res.Result
	fmt.Fprintln(r.w, "\nCalculating User Stats...")
	fmt.Fprintln(r.w)

	fmt.Fprintln(r.w, "User types:")
	r.frequency("User Type", s.UserTypes)

	fmt.Fprintln(r.w, "Gender counts:")
	if !s.Gender.Available {
		fmt.Fprintf(r.w, "No gender info available (%s).\n", NotAvailable)
	} else {
		r.frequency("Gender", s.Gender)
	}

	if !s.BirthYear.Available {
		fmt.Fprintf(r.w, "No birth year info available (%s).\n", NotAvailable)
	} else {
		fmt.Fprintln(r.w, "Earliest birth year:", s.BirthYear.Earliest)
		fmt.Fprintln(r.w, "Most recent birth year:", s.BirthYear.MostRecent)
		fmt.Fprintln(r.w, "Most common birth year:", s.BirthYear.MostCommon)
	}
	r.footer(res.Elapsed.Seconds())
}

// RawTrips writes a page of raw trip rows, numbered from offset+1.
func (r *TextRenderer) RawTrips(offset int, trips []domain.Trip) {
	if len(trips) == 0 {
		fmt.Fprintln(r.w, "No more trips to show.")
		return
	}
	table := tablewriter.NewWriter(r.w)
	table.SetHeader([]string{"#", "Start Time", "Start Station", "End Station", "Trip Duration"})
	for i, t := range trips {
		table.Append([]string{
			strconv.Itoa(offset + i + 1),
			t.StartTime.Format("2006-01-02 15:04:05"),
			t.StartStation,
			t.EndStation,
			strconv.FormatFloat(t.TripDuration, 'f', -1, 64),
		})
	}
	table.Render()
}

func (r *TextRenderer) frequency(label string, f stats.Frequency) {
	if len(f.Counts) == 0 {
		fmt.Fprintln(r.w, NoData)
		return
	}
	table := tablewriter.NewWriter(r.w)
	table.SetHeader([]string{label, "Count"})
	for _, vc := range f.Counts {
		table.Append([]string{vc.Value, strconv.Itoa(vc.Count)})
	}
	table.Render()
}

func (r *TextRenderer) footer(seconds float64) {
	if r.showTiming {
		fmt.Fprintf(r.w, "\nThis took %.6f seconds.\n", seconds)
	}
	fmt.Fprintln(r.w, separator)
}

// Report writes the filter echo and every statistic group.
func (r *TextRenderer) Report(rep *Report) {
	fmt.Fprintf(r.w, "Exploring %s with %s (%d of %d trips).\n",
		rep.City.Title(), rep.Filter, rep.FilteredTrips, rep.LoadedTrips)
	fmt.Fprintln(r.w, separator)
	r.Temporal(rep.Temporal)
	r.Stations(rep.Stations)
	r.Durations(rep.Durations)
	r.Users(rep.Users)
}
