package trips

import (
	"errors"
	"fmt"
	"time"

	"bikeshare/internal/utils"
)

// City identifies one of the known bike-share systems, or AllCities.
type City string

const (
	Chicago     City = "chicago"
	NewYorkCity City = "new york city"
	Washington  City = "washington"
	AllCities   City = "all"
)

// KnownCities is the fixed order in which cities are combined.
var KnownCities = []City{Chicago, NewYorkCity, Washington}

var citySynonyms = map[string]City{
	"nyc":      NewYorkCity,
	"new york": NewYorkCity,
	"dc":       Washington,
}

// Title returns the display name of the city.
func (c City) Title() string {
	if c == AllCities {
		return "All Cities"
	}
	return utils.TitleCase(string(c))
}

// AnyMonth and AnyDay disable the month and weekday filters.
const (
	AnyMonth time.Month   = 0
	AnyDay   time.Weekday = -1
)

// ErrInvalidSelection is returned when an input does not name a city, month or day.
var ErrInvalidSelection = errors.New("invalid selection")

const all = "all"

// ParseCity maps user input to a City. Matching is case-insensitive and
// accepts the synonyms nyc and dc.
func ParseCity(input string) (City, error) {
	s := utils.NormalizeInput(input)
	if s == all {
		return AllCities, nil
	}
	if c, ok := citySynonyms[s]; ok {
		return c, nil
	}
	for _, c := range KnownCities {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: city %q", ErrInvalidSelection, input)
}

// ParseMonth maps a full month name, or "all", to a month filter.
func ParseMonth(input string) (time.Month, error) {
	s := utils.NormalizeInput(input)
	if s == all {
		return AnyMonth, nil
	}
	for m := time.January; m <= time.December; m++ {
		if utils.NormalizeInput(m.String()) == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: month %q", ErrInvalidSelection, input)
}

// ParseDay maps a full weekday name, or "all", to a weekday filter.
func ParseDay(input string) (time.Weekday, error) {
	s := utils.NormalizeInput(input)
	if s == all {
		return AnyDay, nil
	}
	for _, d := range utils.MondayFirst {
		if utils.NormalizeInput(d.String()) == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: day %q", ErrInvalidSelection, input)
}

// Selection is the (city, month, day) triple that narrows a load.
type Selection struct {
	City  City
	Month time.Month
	Day   time.Weekday
}

// NewSelection returns a selection over every month and weekday of city.
func NewSelection(city City) Selection {
	return Selection{City: city, Month: AnyMonth, Day: AnyDay}
}

// Matches reports whether the trip satisfies both the month and the day filter.
func (s Selection) Matches(trip Trip) bool {
	if s.Month != AnyMonth && trip.StartTime.Month() != s.Month {
		return false
	}
	if s.Day != AnyDay && trip.StartTime.Weekday() != s.Day {
		return false
	}
	return true
}

// MonthLabel returns the month name or "All".
func (s Selection) MonthLabel() string {
	if s.Month == AnyMonth {
		return "All"
	}
	return s.Month.String()
}

// DayLabel returns the weekday name or "All".
func (s Selection) DayLabel() string {
	if s.Day == AnyDay {
		return "All"
	}
	return s.Day.String()
}

// Describe renders the selection as a sentence for the report menu.
func (s Selection) Describe() string {
	city := s.City.Title()
	if s.City == AllCities {
		city = "Chicago, New York City, and Washington"
	}
	day := "all weekdays"
	if s.Day != AnyDay {
		day = "all " + s.Day.String() + "s"
	}
	month := "all months"
	if s.Month != AnyMonth {
		month = s.Month.String()
	}
	return fmt.Sprintf("bike sharing data in %s for %s in %s", city, day, month)
}
