package reporting

import (
	"time"

	"bikeshare-explorer/internal/domain"
	"bikeshare-explorer/internal/session"
	"bikeshare-explorer/internal/stats"
)

// Report is a full session report with every statistic group.
type Report struct {
	// Metadata
	GeneratedAt time.Time
	SessionID   string
	City        domain.City
	Filter      domain.FilterSpec

	// Data Summary
	LoadedTrips   int
	FilteredTrips int
	HasGender     bool
	HasBirthYear  bool

	// Statistic groups
	Temporal  session.Timed[stats.TemporalStats]
	Stations  session.Timed[stats.StationStats]
	Durations session.Timed[stats.DurationStats]
	Users     session.Timed[stats.UserStats]
}

// BuildReport computes every statistic group for the session.
func BuildReport(s *session.Session, now time.Time) *Report {
	schema := s.Loaded().Schema()
	return &Report{
		GeneratedAt:   now,
		SessionID:     s.ID.String(),
		City:          s.City,
		Filter:        s.Filter,
		LoadedTrips:   s.Loaded().Len(),
		FilteredTrips: s.Table().Len(),
		HasGender:     schema.HasColumn(domain.ColumnGender),
		HasBirthYear:  schema.HasColumn(domain.ColumnBirthYear),
		Temporal:      s.Temporal(),
		Stations:      s.Stations(),
		Durations:     s.Durations(),
		Users:         s.Users(),
	}
}
