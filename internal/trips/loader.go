package trips

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"bikeshare/internal/utils"
)

// LoadObserver is notified after every load attempt.
type LoadObserver interface {
	ObserveLoad(city string, rows int, elapsed time.Duration, err error)
}

// Loader reads trip tables from the configured city files.
type Loader struct {
	sources  Sources
	open     func(path string) (io.ReadCloser, error)
	logger   *slog.Logger
	observer LoadObserver
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger used for load events.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// WithObserver registers an observer for load metrics.
func WithObserver(o LoadObserver) LoaderOption {
	return func(l *Loader) { l.observer = o }
}

// WithOpener replaces os.Open, mostly for tests.
func WithOpener(open func(path string) (io.ReadCloser, error)) LoaderOption {
	return func(l *Loader) { l.open = open }
}

// NewLoader creates a Loader over sources.
func NewLoader(sources Sources, opts ...LoaderOption) *Loader {
	l := &Loader{
		sources: sources,
		open: func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the selected city (or every known city) and keeps the trips
// matching the selection's month and day filters.
func (l *Loader) Load(ctx context.Context, sel Selection) (*Table, error) {
	start := time.Now()
	table, err := l.load(ctx, sel)
	elapsed := time.Since(start)

	rows := table.Len()
	if l.observer != nil {
		l.observer.ObserveLoad(string(sel.City), rows, elapsed, err)
	}
	if err != nil {
		l.logger.Error("Failed to load trip data", "city", sel.City, "error", err)
		return nil, err
	}

	l.logger.Info("Loaded trip data",
		"city", sel.City,
		"month", sel.MonthLabel(),
		"day", sel.DayLabel(),
		"rows", rows,
		"elapsed", elapsed,
	)
	return table, nil
}

func (l *Loader) load(ctx context.Context, sel Selection) (*Table, error) {
	if sel.City != AllCities {
		return l.loadCity(ctx, sel.City, sel, false)
	}

	combined := &Table{Schema: Schema{HasCity: true}}
	for _, city := range KnownCities {
		t, err := l.loadCity(ctx, city, sel, true)
		if err != nil {
			return nil, err
		}
		combined.Schema = combined.Schema.Union(t.Schema)
		combined.Trips = append(combined.Trips, t.Trips...)
	}
	return combined, nil
}

func (l *Loader) loadCity(ctx context.Context, city City, sel Selection, tag bool) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, ok := l.sources.Path(city)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}

	f, err := l.open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data for %s: %w", city.Title(), err)
	}
	defer f.Close()

	label := ""
	if tag {
		label = city.Title()
	}

	l.logger.Debug("Reading trip file", "city", city, "path", path)
	return ReadTable(f, path, sel, label)
}

type columnIndex map[string]int

func (c columnIndex) has(name string) bool {
	_, ok := c[name]
	return ok
}

func (c columnIndex) get(record []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

var requiredColumns = []string{
	ColStartTime,
	ColEndTime,
	ColTripDuration,
	ColStartStation,
	ColEndStation,
	ColUserType,
}

// ReadTable parses one CSV dataset. Every row is parsed, so a bad row fails
// the read even if the selection would have filtered it out. When city is not
// empty every trip is tagged with it.
func ReadTable(r io.Reader, name string, sel Selection, city string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty file")
		}
		return nil, &ParseError{File: name, Column: "header", Err: err}
	}

	cols := make(columnIndex, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if h == "" {
			continue
		}
		cols[h] = i
	}
	for _, c := range requiredColumns {
		if !cols.has(c) {
			return nil, &ParseError{File: name, Column: c, Err: ErrMissingColumn}
		}
	}

	table := &Table{
		Schema: Schema{
			HasGender:    cols.has(ColGender),
			HasBirthYear: cols.has(ColBirthYear),
			HasCity:      city != "",
		},
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			line := 0
			if errors.As(err, &csvErr) {
				line = csvErr.Line
			}
			return nil, &ParseError{File: name, Line: line, Column: "row", Err: err}
		}
		line, _ := reader.FieldPos(0)

		trip, column, err := parseTrip(cols, record)
		if err != nil {
			return nil, &ParseError{File: name, Line: line, Column: column, Err: err}
		}
		if !sel.Matches(trip) {
			continue
		}
		trip.City = city
		table.Trips = append(table.Trips, trip)
	}

	return table, nil
}

func parseTrip(cols columnIndex, record []string) (Trip, string, error) {
	var (
		trip Trip
		err  error
	)

	trip.StartTime, err = utils.ParseTimestamp(cols.get(record, ColStartTime))
	if err != nil {
		return trip, ColStartTime, err
	}

	if v := cols.get(record, ColEndTime); v != "" {
		trip.EndTime, err = utils.ParseTimestamp(v)
		if err != nil {
			return trip, ColEndTime, err
		}
	}

	trip.Duration, err = parseDuration(cols.get(record, ColTripDuration))
	if err != nil {
		return trip, ColTripDuration, err
	}

	trip.StartStation = cols.get(record, ColStartStation)
	trip.EndStation = cols.get(record, ColEndStation)
	trip.UserType = cols.get(record, ColUserType)
	trip.Gender = cols.get(record, ColGender)

	if v := cols.get(record, ColBirthYear); v != "" {
		trip.BirthYear, err = parseYear(v)
		if err != nil {
			return trip, ColBirthYear, err
		}
	}

	return trip, "", nil
}

func parseDuration(v string) (float64, error) {
	if v == "" {
		return 0, errors.New("trip duration cannot be empty")
	}
	d, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid trip duration: %q", v)
	}
	if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, fmt.Errorf("trip duration out of range: %q", v)
	}
	return d, nil
}

// parseYear accepts "1985" as well as the float form "1985.0" some exports use.
func parseYear(v string) (int, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f <= 0 {
		return 0, fmt.Errorf("invalid birth year: %q", v)
	}
	return int(f), nil
}
