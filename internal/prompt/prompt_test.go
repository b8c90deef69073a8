package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"bikeshare-explorer/internal/domain"
)

func TestFilters_RepromptsInvalidInput(t *testing.T) {
	in := strings.NewReader("boston\nny\njuly\n\nfeb\nfunday\nthurs\n")
	var out bytes.Buffer

	city, spec, err := New(in, &out).Filters()
	if err != nil {
		t.Fatalf("Filters failed: %v", err)
	}

	if city != domain.CityNewYorkCity {
		t.Errorf("city = %q, want new york city", city)
	}
	if spec.Month.Month() != time.February {
		t.Errorf("month = %s, want february", spec.Month)
	}
	if spec.Day.String() != "thursday" {
		t.Errorf("day = %s, want thursday", spec.Day)
	}

	text := out.String()
	if n := strings.Count(text, "Type the name or abbreviation of the city"); n != 2 {
		t.Errorf("city asked %d times, want 2", n)
	}
	if n := strings.Count(text, "Type the month"); n != 3 {
		t.Errorf("month asked %d times, want 3", n)
	}
	if !strings.Contains(text, "City: new york city\nMonth: february\nDay: thursday") {
		t.Errorf("missing filter echo:\n%s", text)
	}
}

func TestFilters_EOF(t *testing.T) {
	_, _, err := New(strings.NewReader("ch\n"), io.Discard).Filters()
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestConfirm(t *testing.T) {
	p := New(strings.NewReader("yes\nY\nno\nmaybe\n"), io.Discard)
	for i, want := range []bool{true, true, false, false} {
		got, err := p.Confirm("Continue?")
		if err != nil {
			t.Fatalf("Confirm %d failed: %v", i, err)
		}
		if got != want {
			t.Errorf("Confirm %d = %v, want %v", i, got, want)
		}
	}
}
