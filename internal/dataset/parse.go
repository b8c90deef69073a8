package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// timestampLayouts are tried in order when parsing start_time.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
}

// ParseTimestamp parses a start_time cell in any supported layout.
// Values without a zone are read as UTC so derived calendar fields match the source text.
func ParseTimestamp(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
}

// parseDuration parses a non-negative trip duration in seconds.
func parseDuration(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("%w: trip duration %q", ErrMalformedValue, s)
	}
	return v, nil
}

// parseBirthYear parses a birth year cell. Empty cells are missing values.
// Exports often write years as floats ("1992.0"); the fraction is truncated.
func parseBirthYear(s string) (int, bool, error) {
	v := strings.TrimSpace(s)
	if v == "" || strings.EqualFold(v, "nan") {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false, fmt.Errorf("%w: birth year %q", ErrMalformedValue, s)
	}
	return int(f), true, nil
}

// normalizeColumn converts "Start Time" to "start_time".
func normalizeColumn(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
