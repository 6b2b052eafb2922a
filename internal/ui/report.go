package ui

import (
	"errors"
	"fmt"
	"strings"

	"bikeshare/internal/utils"
)

// Report is one entry of the report menu.
type Report int

const (
	ReportSummary Report = iota
	ReportRaw
	ReportTime
	ReportStation
	ReportTrip
	ReportUser
	ReportRestart
	ReportExit

	reportCount
)

var reportNames = [reportCount]string{
	ReportSummary: "summary",
	ReportRaw:     "raw",
	ReportTime:    "time",
	ReportStation: "station",
	ReportTrip:    "trip",
	ReportUser:    "user",
	ReportRestart: "restart",
	ReportExit:    "exit",
}

var reportDescriptions = [reportCount]string{
	ReportSummary: "a short summary of the selected data",
	ReportRaw:     "page through the raw data table",
	ReportTime:    "popular travel times",
	ReportStation: "popular stations and routes",
	ReportTrip:    "trip durations",
	ReportUser:    "user types and demographics",
	ReportRestart: "change the city, month or day selection",
	ReportExit:    "leave the explorer",
}

// ErrUnknownReport is returned by ParseReport for input outside the menu.
var ErrUnknownReport = errors.New("unknown report")

// Reports lists every menu entry in display order.
func Reports() []Report {
	out := make([]Report, 0, reportCount)
	for r := ReportSummary; r < reportCount; r++ {
		out = append(out, r)
	}
	return out
}

func (r Report) String() string {
	if r < 0 || r >= reportCount {
		return fmt.Sprintf("Report(%d)", int(r))
	}
	return reportNames[r]
}

// Description returns the menu text of the report.
func (r Report) Description() string {
	if r < 0 || r >= reportCount {
		return ""
	}
	return reportDescriptions[r]
}

// Control reports whether r leaves the report loop instead of showing a report.
func (r Report) Control() bool {
	return r == ReportRestart || r == ReportExit
}

// ParseReport maps a menu keyword, case-insensitively, to its Report.
func ParseReport(input string) (Report, error) {
	s := utils.NormalizeInput(input)
	for r := ReportSummary; r < reportCount; r++ {
		if reportNames[r] == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownReport, input)
}

func menuText() string {
	var b strings.Builder
	b.WriteString("Please select one of the following options by typing in..:\n")
	for _, r := range Reports() {
		fmt.Fprintf(&b, "  > %-8s - %s\n", "'"+r.String()+"'", r.Description())
	}
	return b.String()
}
