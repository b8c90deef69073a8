package storage

import (
	"strconv"

	"bikeshare-explorer/internal/domain"
)

// TimestampLayout is the canonical start_time text form written by sinks.
const TimestampLayout = "2006-01-02 15:04:05"

// EncodeTrips renders trips back into a Dataset with the schema's columns.
// Missing optional values become empty cells.
func EncodeTrips(schema domain.Schema, trips []domain.Trip) *Dataset {
	columns := schema.Columns()
	ds := &Dataset{
		Columns: columns,
		Rows:    make([][]string, len(trips)),
	}
	for i, t := range trips {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = encodeCell(t, col)
		}
		ds.Rows[i] = row
	}
	return ds
}

func encodeCell(t domain.Trip, column string) string {
	switch column {
	case domain.ColumnStartTime:
		return t.StartTime.Format(TimestampLayout)
	case domain.ColumnStartStation:
		return t.StartStation
	case domain.ColumnEndStation:
		return t.EndStation
	case domain.ColumnTripDuration:
		return strconv.FormatFloat(t.TripDuration, 'f', -1, 64)
	case domain.ColumnUserType:
		return t.UserType
	case domain.ColumnGender:
		if t.HasGender {
			return t.Gender
		}
	case domain.ColumnBirthYear:
		if t.HasBirthYear {
			return strconv.Itoa(t.BirthYear)
		}
	}
	return ""
}

// TableName returns the SQL table holding a city's trips ("new_york_city_trips").
func TableName(city domain.City) string {
	return city.Slug() + "_trips"
}

// RowIDColumn is the ordering key of every SQL trip table. It is not part of the Dataset.
const RowIDColumn = "row_id"

// TripValues returns typed column values for a SQL insert, in columns order.
// Missing optional values are nil pointers so drivers write NULL.
func TripValues(columns []string, t domain.Trip) []any {
	out := make([]any, len(columns))
	for i, col := range columns {
		switch col {
		case domain.ColumnStartTime:
			out[i] = t.StartTime.UTC()
		case domain.ColumnStartStation:
			out[i] = t.StartStation
		case domain.ColumnEndStation:
			out[i] = t.EndStation
		case domain.ColumnTripDuration:
			out[i] = t.TripDuration
		case domain.ColumnUserType:
			out[i] = t.UserType
		case domain.ColumnGender:
			var g *string
			if t.HasGender {
				g = &t.Gender
			}
			out[i] = g
		case domain.ColumnBirthYear:
			var y *int32
			if t.HasBirthYear {
				v := int32(t.BirthYear)
				y = &v
			}
			out[i] = y
		default:
			out[i] = nil
		}
	}
	return out
}
