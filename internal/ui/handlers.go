package ui

import (
	"bikeshare/internal/stats"
	"bikeshare/internal/trips"
)

type reportHandler func(s *Session, table *trips.Table) error

// reportHandlers binds every non-control report to the code that shows it.
var reportHandlers = map[Report]reportHandler{
	ReportSummary: showSummary,
	ReportRaw:     showRaw,
	ReportTime:    showTime,
	ReportStation: showStation,
	ReportTrip:    showTrip,
	ReportUser:    showUser,
}

func showSummary(s *Session, table *trips.Table) error {
	printHeader(s.out, "Data Summary")
	writeSummary(s.out, stats.Summarize(table), s.markdown)
	return nil
}

func showRaw(s *Session, table *trips.Table) error {
	printHeader(s.out, "Raw Data")
	return s.browse(s.out, table, s.pageSize)
}

func showTime(s *Session, table *trips.Table) error {
	printHeader(s.out, "The Most Frequent Times of Travel")
	ts, err := stats.TimePopularity(table)
	if err != nil {
		return err
	}
	writeTimeStats(s.out, ts)
	return nil
}

func showStation(s *Session, table *trips.Table) error {
	printHeader(s.out, "The Most Popular Stations and Trips")
	ss, err := stats.StationPopularity(table)
	if err != nil {
		return err
	}
	writeStationStats(s.out, ss)
	return nil
}

func showTrip(s *Session, table *trips.Table) error {
	printHeader(s.out, "Trip Durations")
	ds, err := stats.TripDurations(table)
	if err != nil {
		return err
	}
	writeDurationStats(s.out, ds)
	return nil
}

func showUser(s *Session, table *trips.Table) error {
	printHeader(s.out, "User Stats")
	us, err := stats.Users(table)
	if err != nil {
		return err
	}
	writeUserStats(s.out, us)
	return nil
}
