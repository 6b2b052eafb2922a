package stats

import (
	"sort"

	"bikeshare/internal/trips"
)

// UserStats holds rider demographics. HasGender and HasBirthYear are false
// when the dataset carries no such column or every value is missing.
type UserStats struct {
	UserTypes []CategoryCount

	HasGender bool
	Genders   []CategoryCount

	HasBirthYear    bool
	Oldest          int // earliest birth year
	Youngest        int // latest birth year
	MostCommon      int
	MostCommonCount int
}

// Users counts trips per user type and gender and summarizes birth years.
// Trips with an empty value are left out of the respective count. The most
// common birth year resolves ties to the earliest year.
func Users(t *trips.Table) (UserStats, error) {
	if err := requireRows(t); err != nil {
		return UserStats{}, err
	}

	types, genders := newCounter(), newCounter()
	years := make(map[int]int)
	for _, trip := range t.Trips {
		if trip.UserType != "" {
			types.add(trip.UserType)
		}
		if t.Schema.HasGender && trip.Gender != "" {
			genders.add(trip.Gender)
		}
		if t.Schema.HasBirthYear && trip.BirthYear != 0 {
			years[trip.BirthYear]++
		}
	}

	var s UserStats
	s.UserTypes = types.sorted()
	if genders.len() > 0 {
		s.HasGender = true
		s.Genders = genders.sorted()
	}
	if len(years) > 0 {
		s.HasBirthYear = true
		s.Oldest, s.Youngest = birthYearRange(years)
		s.MostCommon, s.MostCommonCount = birthYearMode(years)
	}
	return s, nil
}

// sorted returns the counts ordered by label.
func (c *counter) sorted() []CategoryCount {
	out := make([]CategoryCount, 0, len(c.order))
	for _, label := range c.order {
		out = append(out, CategoryCount{Label: label, Count: c.counts[label]})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Label < out[j].Label
	})
	return out
}

func birthYearRange(years map[int]int) (oldest, youngest int) {
	first := true
	for y := range years {
		if first || y < oldest {
			oldest = y
		}
		if first || y > youngest {
			youngest = y
		}
		first = false
	}
	return oldest, youngest
}

func birthYearMode(years map[int]int) (year, count int) {
	for y, n := range years {
		if n > count || (n == count && y < year) {
			year, count = y, n
		}
	}
	return year, count
}
