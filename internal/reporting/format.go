package reporting

import (
	"fmt"
	"strings"
	"time"

	"bikeshare-explorer/internal/stats"
)

// Wording for results that have no value.
const (
	NoData       = "no data"
	NotAvailable = "not available"
)

// FormatDuration renders whole seconds as "H:MM:SS" or "N day(s), H:MM:SS".
func FormatDuration(d time.Duration) string {
	negative := d < 0
	if negative {
		d = -d
	}
	total := int64(d / time.Second)
	days := total / 86400
	rem := total % 86400
	clock := fmt.Sprintf("%d:%02d:%02d", rem/3600, (rem%3600)/60, rem%60)

	var out string
	switch days {
	case 0:
		out = clock
	case 1:
		out = "1 day, " + clock
	default:
		out = fmt.Sprintf("%d days, %s", days, clock)
	}
	if negative {
		out = "-" + out
	}
	return out
}

// formatMode renders a mode value or NoData.
func formatMode[T any](m stats.Mode[T], render func(T) string) string {
	if !m.Defined {
		return NoData
	}
	return render(m.Value)
}

func formatMonth(m time.Month) string     { return m.String() }
func formatWeekday(d time.Weekday) string { return d.String() }
func formatHour(h int) string             { return fmt.Sprintf("%d", h) }
func formatString(s string) string        { return s }

// separator is the rule printed between report sections.
var separator = strings.Repeat("-", 40)
