// Package trips holds the trip record model, the filter selection and the
// CSV dataset loader.
package trips

import "time"

// Column names as they appear in the dataset headers.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
	ColCity         = "City"
)

// Trip is one bike-share ride. Optional fields hold their zero value when the
// dataset does not carry them or the cell is empty.
type Trip struct {
	StartTime    time.Time
	EndTime      time.Time
	Duration     float64 // seconds
	StartStation string
	EndStation   string
	UserType     string
	Gender       string
	BirthYear    int
	City         string
}

// Schema describes which optional columns a table carries.
type Schema struct {
	HasGender    bool
	HasBirthYear bool
	HasCity      bool
}

// Columns returns the column names of the schema in display order.
func (s Schema) Columns() []string {
	var cols []string
	if s.HasCity {
		cols = append(cols, ColCity)
	}
	cols = append(cols, ColStartTime, ColEndTime, ColTripDuration, ColStartStation, ColEndStation, ColUserType)
	if s.HasGender {
		cols = append(cols, ColGender)
	}
	if s.HasBirthYear {
		cols = append(cols, ColBirthYear)
	}
	return cols
}

// Union returns a schema carrying every optional column of s or o.
func (s Schema) Union(o Schema) Schema {
	return Schema{
		HasGender:    s.HasGender || o.HasGender,
		HasBirthYear: s.HasBirthYear || o.HasBirthYear,
		HasCity:      s.HasCity || o.HasCity,
	}
}

// Table is an ordered set of trips sharing one schema.
type Table struct {
	Schema Schema
	Trips  []Trip
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Trips)
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return t.Len() == 0
}

// Rows returns the trips in [start, end) as display cells following
// Schema.Columns.
func (t *Table) Rows(start, end int) [][]string {
	if start < 0 {
		start = 0
	}
	if end > t.Len() {
		end = t.Len()
	}
	if start >= end {
		return nil
	}

	rows := make([][]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, t.Schema.cells(t.Trips[i]))
	}
	return rows
}
