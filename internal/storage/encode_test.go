package storage

import (
	"testing"
	"time"

	"bikeshare-explorer/internal/domain"
)

func TestEncodeTrips(t *testing.T) {
	schema := domain.NewSchema(domain.ColumnBirthYear, domain.ColumnStartTime, domain.ColumnStartStation,
		domain.ColumnEndStation, domain.ColumnTripDuration, domain.ColumnUserType)
	trips := []domain.Trip{
		{
			StartTime:    time.Date(2017, time.March, 5, 6, 7, 8, 0, time.UTC),
			StartStation: "A",
			EndStation:   "B",
			TripDuration: 12.25,
			UserType:     "Subscriber",
			BirthYear:    1970,
			HasBirthYear: true,
		},
		{
			StartTime:    time.Date(2017, time.March, 6, 0, 0, 0, 0, time.UTC),
			StartStation: "B",
			EndStation:   "A",
			TripDuration: 60,
			UserType:     "Customer",
		},
	}

	ds := EncodeTrips(schema, trips)

	wantColumns := []string{"start_time", "start_station", "end_station", "trip_duration", "user_type", "birth_year"}
	if len(ds.Columns) != len(wantColumns) {
		t.Fatalf("columns = %v, want %v", ds.Columns, wantColumns)
	}
	for i, c := range wantColumns {
		if ds.Columns[i] != c {
			t.Errorf("column %d = %q, want %q", i, ds.Columns[i], c)
		}
	}

	if got := ds.Rows[0]; got[0] != "2017-03-05 06:07:08" || got[3] != "12.25" || got[5] != "1970" {
		t.Errorf("row 0 = %v", got)
	}
	if got := ds.Rows[1][5]; got != "" {
		t.Errorf("missing birth year encoded as %q, want empty", got)
	}
}

func TestTripValues(t *testing.T) {
	columns := []string{domain.ColumnStartTime, domain.ColumnGender, domain.ColumnBirthYear, "unknown"}
	start := time.Date(2017, time.May, 1, 12, 0, 0, 0, time.FixedZone("EST", -5*3600))

	values := TripValues(columns, domain.Trip{StartTime: start})
	if ts, ok := values[0].(time.Time); !ok || ts.Location() != time.UTC || !ts.Equal(start) {
		t.Errorf("start_time value = %v, want UTC instant of %v", values[0], start)
	}
	if g, ok := values[1].(*string); !ok || g != nil {
		t.Errorf("missing gender = %#v, want nil *string", values[1])
	}
	if y, ok := values[2].(*int32); !ok || y != nil {
		t.Errorf("missing birth year = %#v, want nil *int32", values[2])
	}
	if values[3] != nil {
		t.Errorf("unknown column = %v, want nil", values[3])
	}

	values = TripValues(columns, domain.Trip{Gender: "Female", HasGender: true, BirthYear: 1988, HasBirthYear: true})
	if g := values[1].(*string); g == nil || *g != "Female" {
		t.Errorf("gender = %v, want Female", g)
	}
	if y := values[2].(*int32); y == nil || *y != 1988 {
		t.Errorf("birth year = %v, want 1988", y)
	}
}

func TestTableName(t *testing.T) {
	if got := TableName(domain.CityNewYorkCity); got != "new_york_city_trips" {
		t.Errorf("TableName = %q", got)
	}
}
