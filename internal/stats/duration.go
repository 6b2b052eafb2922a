package stats

import (
	"bikeshare/internal/trips"
	"bikeshare/internal/utils"
)

// DurationStats holds trip duration aggregates in seconds.
type DurationStats struct {
	Total   float64
	Longest float64
	Mean    float64
}

// TotalText renders the accumulated duration as hours, minutes and seconds.
func (d DurationStats) TotalText() string { return utils.FormatHours(d.Total) }

// LongestText renders the longest trip as hours, minutes and seconds.
func (d DurationStats) LongestText() string { return utils.FormatHours(d.Longest) }

// MeanText renders the mean trip as minutes and seconds.
func (d DurationStats) MeanText() string { return utils.FormatMinutes(d.Mean) }

// TripDurations sums the trip durations and finds their maximum and mean.
func TripDurations(t *trips.Table) (DurationStats, error) {
	if err := requireRows(t); err != nil {
		return DurationStats{}, err
	}

	var d DurationStats
	for _, trip := range t.Trips {
		d.Total += trip.Duration
		if trip.Duration > d.Longest {
			d.Longest = trip.Duration
		}
	}
	d.Mean = d.Total / float64(t.Len())
	return d, nil
}
