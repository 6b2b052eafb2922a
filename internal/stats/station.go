package stats

import (
	"fmt"

	"bikeshare/internal/trips"
)

// Route is a pair of stations and the trips between them in either
// direction. From == To marks round trips at one station.
type Route struct {
	From  string
	To    string
	Count int
}

// RoundTrip reports whether the route starts and ends at the same station.
func (r Route) RoundTrip() bool {
	return r.From == r.To
}

func (r Route) String() string {
	if r.RoundTrip() {
		return fmt.Sprintf("round trips at '%s'", r.From)
	}
	return fmt.Sprintf("between '%s' and '%s'", r.From, r.To)
}

// StationStats holds the station popularity report.
type StationStats struct {
	PopularStart     CategoryCount
	StartDestination CategoryCount // most common end station of trips from PopularStart
	PopularEnd       CategoryCount
	EndOrigin        CategoryCount // most common start station of trips into PopularEnd
	PopularRoute     Route
}

// StationPopularity finds the busiest start and end stations, their most
// common counterpart, and the most used route. Ties go to the station or
// route seen first in table order.
func StationPopularity(t *trips.Table) (StationStats, error) {
	if err := requireRows(t); err != nil {
		return StationStats{}, err
	}

	starts, ends := newCounter(), newCounter()
	for _, trip := range t.Trips {
		starts.add(trip.StartStation)
		ends.add(trip.EndStation)
	}

	var s StationStats
	s.PopularStart = starts.top()
	s.PopularEnd = ends.top()

	destinations, origins := newCounter(), newCounter()
	for _, trip := range t.Trips {
		if trip.StartStation == s.PopularStart.Label {
			destinations.add(trip.EndStation)
		}
		if trip.EndStation == s.PopularEnd.Label {
			origins.add(trip.StartStation)
		}
	}
	s.StartDestination = destinations.top()
	s.EndOrigin = origins.top()
	s.PopularRoute = popularRoute(t.Trips)

	return s, nil
}

type routeKey struct {
	a, b string
}

// popularRoute scores every unordered station pair by the trips in both
// directions; round trips at a station form their own pair.
func popularRoute(all []trips.Trip) Route {
	routes := make(map[routeKey]*Route)
	var order []routeKey

	for _, trip := range all {
		key := routeKey{a: trip.StartStation, b: trip.EndStation}
		if key.b < key.a {
			key.a, key.b = key.b, key.a
		}
		r, ok := routes[key]
		if !ok {
			// label the route in the direction it was first travelled
			r = &Route{From: trip.StartStation, To: trip.EndStation}
			routes[key] = r
			order = append(order, key)
		}
		r.Count++
	}

	var best Route
	for _, key := range order {
		if r := routes[key]; r.Count > best.Count {
			best = *r
		}
	}
	return best
}
