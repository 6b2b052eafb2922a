package stats

import (
	"time"

	"bikeshare/internal/trips"
	"bikeshare/internal/utils"
)

// TimeStats holds the most frequent month, weekday and start hour.
type TimeStats struct {
	Month        time.Month
	MonthCount   int
	Weekday      time.Weekday
	WeekdayCount int
	Hour         int
	HourCount    int
}

// TimePopularity finds the most frequent month, weekday and start hour.
// Ties resolve to the first value in calendar order: January first, Monday
// first, hour 0 first.
func TimePopularity(t *trips.Table) (TimeStats, error) {
	if err := requireRows(t); err != nil {
		return TimeStats{}, err
	}

	var (
		months   [13]int
		weekdays [7]int
		hours    [24]int
	)
	for _, trip := range t.Trips {
		months[trip.StartTime.Month()]++
		weekdays[trip.StartTime.Weekday()]++
		hours[trip.StartTime.Hour()]++
	}

	var s TimeStats
	for m := time.January; m <= time.December; m++ {
		if months[m] > s.MonthCount {
			s.Month, s.MonthCount = m, months[m]
		}
	}
	for _, d := range utils.MondayFirst {
		if weekdays[d] > s.WeekdayCount {
			s.Weekday, s.WeekdayCount = d, weekdays[d]
		}
	}
	for h := range hours {
		if hours[h] > s.HourCount {
			s.Hour, s.HourCount = h, hours[h]
		}
	}
	return s, nil
}
