package reporting

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00:00"},
		{450 * time.Second, "0:07:30"},
		{3723 * time.Second, "1:02:03"},
		{86400 * time.Second, "1 day, 0:00:00"},
		{(2*86400 + 3661) * time.Second, "2 days, 1:01:01"},
		{1500 * time.Millisecond, "0:00:01"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
