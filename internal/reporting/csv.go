package reporting

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// RenderCSV renders report as one group,metric,value row per statistic.
// Unavailable values are written as "not available", empty ones as "no data".
func RenderCSV(r *Report) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	// Header
	_ = w.Write([]string{"group", "metric", "value"})

	row := func(group, metric, value string) {
		_ = w.Write([]string{group, metric, value})
	}

	row("summary", "city", r.City.String())
	row("summary", "filter", r.Filter.String())
	row("summary", "loaded_trips", strconv.Itoa(r.LoadedTrips))
	row("summary", "filtered_trips", strconv.Itoa(r.FilteredTrips))

	t := r.Temporal.Result
	row("temporal", "most_common_month", formatMode(t.MostCommonMonth, formatMonth))
	row("temporal", "most_common_weekday", formatMode(t.MostCommonWeekday, formatWeekday))
	row("temporal", "most_common_hour", formatMode(t.MostCommonHour, formatHour))

	st := r.Stations.Result
	row("stations", "most_common_start_station", formatMode(st.MostCommonStartStation, formatString))
	row("stations", "most_common_end_station", formatMode(st.MostCommonEndStation, formatString))
	if st.MostCommonTrip.Defined {
		row("stations", "most_common_trip_start", st.MostCommonTrip.Value.Start)
		row("stations", "most_common_trip_end", st.MostCommonTrip.Value.End)
	} else {
		row("stations", "most_common_trip_start", NoData)
		row("stations", "most_common_trip_end", NoData)
	}

	d := r.Durations.Result
	row("duration", "total_seconds", strconv.FormatInt(int64(d.Total.Seconds()), 10))
	row("duration", "total_seconds_exact", strconv.FormatFloat(d.TotalSeconds, 'f', -1, 64))
	if d.HasAverage {
		row("duration", "average_seconds", strconv.FormatInt(int64(d.Average.Seconds()), 10))
	} else {
		row("duration", "average_seconds", NoData)
	}

	u := r.Users.Result
	if len(u.UserTypes.Counts) == 0 {
		row("users", "user_type", NoData)
	}
	for _, vc := range u.UserTypes.Counts {
		row("users", "user_type:"+vc.Value, strconv.Itoa(vc.Count))
	}
	switch {
	case !u.Gender.Available:
		row("users", "gender", NotAvailable)
	case len(u.Gender.Counts) == 0:
		row("users", "gender", NoData)
	}
	for _, vc := range u.Gender.Counts {
		row("users", "gender:"+vc.Value, strconv.Itoa(vc.Count))
	}
	if u.BirthYear.Available {
		row("users", "earliest_birth_year", strconv.Itoa(u.BirthYear.Earliest))
		row("users", "most_recent_birth_year", strconv.Itoa(u.BirthYear.MostRecent))
		row("users", "most_common_birth_year", strconv.Itoa(u.BirthYear.MostCommon))
		row("users", "birth_year_count", strconv.Itoa(u.BirthYear.Counted))
	} else {
		row("users", "birth_year", NotAvailable)
	}

	row("timing", "temporal_seconds", fmt.Sprintf("%.6f", r.Temporal.Elapsed.Seconds()))
	row("timing", "stations_seconds", fmt.Sprintf("%.6f", r.Stations.Elapsed.Seconds()))
	row("timing", "duration_seconds", fmt.Sprintf("%.6f", r.Durations.Elapsed.Seconds()))
	row("timing", "users_seconds", fmt.Sprintf("%.6f", r.Users.Elapsed.Seconds()))

	w.Flush()
	return sb.String()
}
