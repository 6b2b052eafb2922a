package trips

import (
	"strconv"
	"time"
)

const displayLayout = "2006-01-02 15:04:05"

func (s Schema) cells(trip Trip) []string {
	var row []string
	if s.HasCity {
		row = append(row, trip.City)
	}
	row = append(row,
		formatTime(trip.StartTime),
		formatTime(trip.EndTime),
		strconv.FormatFloat(trip.Duration, 'f', -1, 64),
		trip.StartStation,
		trip.EndStation,
		trip.UserType,
	)
	if s.HasGender {
		row = append(row, trip.Gender)
	}
	if s.HasBirthYear {
		year := ""
		if trip.BirthYear != 0 {
			year = strconv.Itoa(trip.BirthYear)
		}
		row = append(row, year)
	}
	return row
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(displayLayout)
}
