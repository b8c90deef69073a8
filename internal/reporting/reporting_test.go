package reporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"bikeshare-explorer/internal/dataset"
	"bikeshare-explorer/internal/domain"
	"bikeshare-explorer/internal/session"
	"bikeshare-explorer/internal/storage/memory"
)

var fixedTime = time.Date(2025, 1, 4, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func openSession(t *testing.T, city domain.City, month, day string) *session.Session {
	t.Helper()
	store := memory.NewTripStore()
	if err := memory.LoadFixtures(store); err != nil {
		t.Fatalf("LoadFixtures failed: %v", err)
	}
	filter, err := domain.NewFilterSpec(month, day)
	if err != nil {
		t.Fatalf("NewFilterSpec failed: %v", err)
	}
	s, err := session.Open(context.Background(), dataset.NewLoader(store), city, filter, session.WithClock(fixedClock))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s
}

func TestTextRenderer_Chicago(t *testing.T) {
	s := openSession(t, domain.CityChicago, "all", "all")
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, true)

	r.Report(BuildReport(s, fixedTime))
	out := buf.String()

	for _, want := range []string{
		"Exploring Chicago with month=all day=all (8 of 8 trips).",
		"The most common month is January",
		"The most common start station: Wood St & Hubbard St",
		"Most frequent combination of start and end stations: Wood St & Hubbard St -> Damen Ave & Chicago Ave",
		"Total travel time: 1:20:21",
		"Average travel time: 0:10:02",
		"Subscriber",
		"Earliest birth year: 1975",
		"Most recent birth year: 1992",
		"Most common birth year: 1992",
		"This took 0.000000 seconds.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTextRenderer_WashingtonUnavailable(t *testing.T) {
	s := openSession(t, domain.CityWashington, "all", "all")
	var buf bytes.Buffer
	NewTextRenderer(&buf, false).Users(s.Users())

	out := buf.String()
	if !strings.Contains(out, "No gender info available (not available).") {
		t.Errorf("missing gender notice:\n%s", out)
	}
	if !strings.Contains(out, "No birth year info available (not available).") {
		t.Errorf("missing birth year notice:\n%s", out)
	}
	if strings.Contains(out, "This took") {
		t.Error("timing line should be hidden")
	}
}

func TestTextRenderer_NoData(t *testing.T) {
	// No chicago fixture trip is in February.
	s := openSession(t, domain.CityChicago, "feb", "all")
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, false)

	r.Temporal(s.Temporal())
	r.Stations(s.Stations())
	r.Durations(s.Durations())

	out := buf.String()
	if strings.Count(out, "No trips match the selected filters: no data.") != 2 {
		t.Errorf("expected two no-data notices:\n%s", out)
	}
	if !strings.Contains(out, "Total travel time: 0:00:00") || !strings.Contains(out, "Average travel time: no data") {
		t.Errorf("unexpected duration output:\n%s", out)
	}
}

func TestTextRenderer_RawTrips(t *testing.T) {
	s := openSession(t, domain.CityNewYorkCity, "all", "all")
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, false)

	r.RawTrips(5, s.RawTrips(5, 5))
	if !strings.Contains(buf.String(), "State St & Smith St") || !strings.Contains(buf.String(), "998") {
		t.Errorf("missing sixth row:\n%s", buf.String())
	}

	buf.Reset()
	r.RawTrips(10, s.RawTrips(10, 5))
	if !strings.Contains(buf.String(), "No more trips to show.") {
		t.Errorf("expected end notice, got %q", buf.String())
	}
}

func TestRenderMarkdown(t *testing.T) {
	s := openSession(t, domain.CityWashington, "june", "all")
	md := RenderMarkdown(BuildReport(s, fixedTime))

	for _, want := range []string{
		"# Bikeshare Report: Washington",
		"Generated: 2025-01-04T12:00:00Z",
		"| Filtered Trips | 2 |",
		"| Gender Column | no |",
		"| Month | June | 2 |",
		"Gender: not available.",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestRenderMarkdown_Totals(t *testing.T) {
	s := openSession(t, domain.CityChicago, "all", "all")
	md := RenderMarkdown(BuildReport(s, fixedTime))

	for _, want := range []string{
		"| Total Travel Time | 1:20:21 |",
		"| Total Seconds | 4821 |",
		"| Trips With Birth Year | 7 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestRenderCSV(t *testing.T) {
	s := openSession(t, domain.CityNewYorkCity, "all", "all")
	out := RenderCSV(BuildReport(s, fixedTime))

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("RenderCSV produced invalid csv: %v", err)
	}
	if got := strings.Join(records[0], ","); got != "group,metric,value" {
		t.Errorf("header = %q", got)
	}

	values := make(map[string]string)
	for _, rec := range records[1:] {
		values[rec[0]+"/"+rec[1]] = rec[2]
	}
	checks := map[string]string{
		"summary/loaded_trips":            "6",
		"duration/total_seconds":          "4842",
		"duration/total_seconds_exact":    "4842",
		"duration/average_seconds":        "807",
		"users/user_type:Subscriber":      "5",
		"users/gender:Male":               "4",
		"users/earliest_birth_year":       "1981",
		"stations/most_common_trip_start": "1 Ave & E 44 St",
		"users/birth_year_count":          "5",
	}
	for key, want := range checks {
		if got := values[key]; got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
}
