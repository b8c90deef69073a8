package reporting

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"bikeshare-explorer/internal/domain"
	"bikeshare-explorer/internal/stats"
)

// RenderMarkdown renders report as Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString(fmt.Sprintf("# Bikeshare Report: %s\n\n", r.City.Title()))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Session: %s | Filter: %s\n\n", r.SessionID, r.Filter))

	// Data Summary
	sb.WriteString("## Data Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Loaded Trips | %d |\n", r.LoadedTrips))
	sb.WriteString(fmt.Sprintf("| Filtered Trips | %d |\n", r.FilteredTrips))
	sb.WriteString(fmt.Sprintf("| Gender Column | %s |\n", yesNo(r.HasGender)))
	sb.WriteString(fmt.Sprintf("| Birth Year Column | %s |\n", yesNo(r.HasBirthYear)))
	sb.WriteString("\n")

	// Temporal
	t := r.Temporal.Result
	sb.WriteString("## Most Frequent Times of Travel\n\n")
	sb.WriteString("| Statistic | Value | Count |\n")
	sb.WriteString("|-----------|-------|-------|\n")
	writeModeRow(&sb, "Month", t.MostCommonMonth, formatMonth)
	writeModeRow(&sb, "Day of Week", t.MostCommonWeekday, formatWeekday)
	writeModeRow(&sb, "Start Hour", t.MostCommonHour, formatHour)
	sb.WriteString("\n")

	// Stations
	st := r.Stations.Result
	sb.WriteString("## Most Popular Stations and Trip\n\n")
	sb.WriteString("| Statistic | Value | Count |\n")
	sb.WriteString("|-----------|-------|-------|\n")
	writeModeRow(&sb, "Start Station", st.MostCommonStartStation, formatString)
	writeModeRow(&sb, "End Station", st.MostCommonEndStation, formatString)
	writeModeRow(&sb, "Trip", st.MostCommonTrip, domain.StationPair.String)
	sb.WriteString("\n")

	// Durations
	d := r.Durations.Result
	sb.WriteString("## Trip Duration\n\n")
	sb.WriteString("| Statistic | Value |\n")
	sb.WriteString("|-----------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total Travel Time | %s |\n", FormatDuration(d.Total)))
	sb.WriteString(fmt.Sprintf("| Total Seconds | %s |\n", strconv.FormatFloat(d.TotalSeconds, 'f', -1, 64)))
	if d.HasAverage {
		sb.WriteString(fmt.Sprintf("| Average Travel Time | %s |\n", FormatDuration(d.Average)))
	} else {
		sb.WriteString(fmt.Sprintf("| Average Travel Time | %s |\n", NoData))
	}
	sb.WriteString("\n")

	// Users
	u := r.Users.Result
	sb.WriteString("## User Stats\n\n")
	sb.WriteString("### User Types\n\n")
	writeFrequency(&sb, "User Type", u.UserTypes)

	sb.WriteString("### Gender\n\n")
	if u.Gender.Available {
		writeFrequency(&sb, "Gender", u.Gender)
	} else {
		sb.WriteString(fmt.Sprintf("Gender: %s.\n\n", NotAvailable))
	}

	sb.WriteString("### Birth Year\n\n")
	if u.BirthYear.Available {
		sb.WriteString("| Statistic | Value |\n")
		sb.WriteString("|-----------|-------|\n")
		sb.WriteString(fmt.Sprintf("| Earliest | %d |\n", u.BirthYear.Earliest))
		sb.WriteString(fmt.Sprintf("| Most Recent | %d |\n", u.BirthYear.MostRecent))
		sb.WriteString(fmt.Sprintf("| Most Common | %d |\n", u.BirthYear.MostCommon))
		sb.WriteString(fmt.Sprintf("| Trips With Birth Year | %d |\n", u.BirthYear.Counted))
		sb.WriteString("\n")
	} else {
		sb.WriteString(fmt.Sprintf("Birth year: %s.\n\n", NotAvailable))
	}

	// Timing
	sb.WriteString("## Timing\n\n")
	sb.WriteString("| Group | Seconds |\n")
	sb.WriteString("|-------|---------|\n")
	sb.WriteString(fmt.Sprintf("| temporal | %.6f |\n", r.Temporal.Elapsed.Seconds()))
	sb.WriteString(fmt.Sprintf("| stations | %.6f |\n", r.Stations.Elapsed.Seconds()))
	sb.WriteString(fmt.Sprintf("| duration | %.6f |\n", r.Durations.Elapsed.Seconds()))
	sb.WriteString(fmt.Sprintf("| users | %.6f |\n", r.Users.Elapsed.Seconds()))
	sb.WriteString("\n")

	return sb.String()
}

func writeModeRow[T any](sb *strings.Builder, label string, m stats.Mode[T], render func(T) string) {
	if !m.Defined {
		sb.WriteString(fmt.Sprintf("| %s | %s | 0 |\n", label, NoData))
		return
	}
	sb.WriteString(fmt.Sprintf("| %s | %s | %d |\n", label, escapeMarkdown(render(m.Value)), m.Count))
}

func writeFrequency(sb *strings.Builder, label string, f stats.Frequency) {
	if len(f.Counts) == 0 {
		sb.WriteString(NoData + "\n\n")
		return
	}
	sb.WriteString(fmt.Sprintf("| %s | Count |\n", label))
	sb.WriteString("|------|-------|\n")
	for _, vc := range f.Counts {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", escapeMarkdown(vc.Value), vc.Count))
	}
	sb.WriteString("\n")
}

func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
