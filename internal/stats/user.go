package stats

import (
	moremath "github.com/aclements/go-moremath/stats"

	"bikeshare-explorer/internal/dataset"
	"bikeshare-explorer/internal/domain"
)

// UserStats holds user type, gender and birth year statistics.
type UserStats struct {
	Trips     int
	UserTypes Frequency
	Gender    Frequency // Available is false when the city has no gender column
	BirthYear BirthYearStats
}

// Empty reports whether the table had no trips.
func (s UserStats) Empty() bool { return s.Trips == 0 }

// BirthYearStats summarises the present birth_year values.
// Available is false when the column is absent or every value is missing.
type BirthYearStats struct {
	Available  bool
	Earliest   int
	MostRecent int
	MostCommon int
	Counted    int // number of trips with a birth year
}

// Users computes user statistics. Optional columns are checked against the
// table's schema: an absent column yields an unavailable result, while a
// missing value in a present column is only excluded from the aggregate.
func Users(t *dataset.Table) UserStats {
	n := t.Len()
	schema := t.Schema()

	userTypes := make([]string, n)
	for i := 0; i < n; i++ {
		userTypes[i] = t.At(i).UserType
	}

	s := UserStats{
		Trips:     n,
		UserTypes: frequency(userTypes),
	}

	if schema.HasColumn(domain.ColumnGender) {
		var genders []string
		for i := 0; i < n; i++ {
			if trip := t.At(i); trip.HasGender {
				genders = append(genders, trip.Gender)
			}
		}
		s.Gender = frequency(genders)
	}

	if schema.HasColumn(domain.ColumnBirthYear) {
		s.BirthYear = birthYears(t)
	}
	return s
}

func birthYears(t *dataset.Table) BirthYearStats {
	var years []int
	sample := moremath.Sample{}
	for i := 0; i < t.Len(); i++ {
		if trip := t.At(i); trip.HasBirthYear {
			years = append(years, trip.BirthYear)
			sample.Xs = append(sample.Xs, float64(trip.BirthYear))
		}
	}
	if len(years) == 0 {
		return BirthYearStats{}
	}

	lo, hi := sample.Bounds()
	common := mode(len(years),
		func(i int) int { return years[i] },
		func(a, b int) bool { return a < b })

	return BirthYearStats{
		Available:  true,
		Earliest:   int(lo),
		MostRecent: int(hi),
		MostCommon: common.Value,
		Counted:    len(years),
	}
}
