package trips_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"bikeshare/internal/trips"
	"bikeshare/internal/trips/tripstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingObserver struct {
	city string
	rows int
	err  error
	hits int
}

func (o *recordingObserver) ObserveLoad(city string, rows int, _ time.Duration, err error) {
	o.city, o.rows, o.err = city, rows, err
	o.hits++
}

func TestLoader_SingleCity(t *testing.T) {
	sources := tripstest.WriteCities(t)
	obs := &recordingObserver{}
	loader := trips.NewLoader(sources, trips.WithLogger(quietLogger()), trips.WithObserver(obs))

	table, err := loader.Load(context.Background(), trips.NewSelection(trips.Chicago))
	require.NoError(t, err)

	assert.Equal(t, tripstest.ChicagoRows, table.Len())
	assert.Equal(t, trips.Schema{HasGender: true, HasBirthYear: true}, table.Schema)

	first := table.Trips[0]
	assert.Equal(t, "Wood St & Hubbard St", first.StartStation)
	assert.Equal(t, "Damen Ave & Chicago Ave", first.EndStation)
	assert.Equal(t, 321.0, first.Duration)
	assert.Equal(t, "Male", first.Gender)
	assert.Equal(t, 1992, first.BirthYear)
	assert.Equal(t, "", first.City)
	assert.Equal(t, time.June, first.StartTime.Month())
	assert.Equal(t, 15, first.StartTime.Hour())

	// empty optional cells stay empty
	assert.Equal(t, "", table.Trips[3].Gender)
	assert.Equal(t, 0, table.Trips[3].BirthYear)

	assert.Equal(t, 1, obs.hits)
	assert.Equal(t, "chicago", obs.city)
	assert.Equal(t, tripstest.ChicagoRows, obs.rows)
	assert.NoError(t, obs.err)
}

func TestLoader_AllCities(t *testing.T) {
	loader := trips.NewLoader(tripstest.WriteCities(t), trips.WithLogger(quietLogger()))

	table, err := loader.Load(context.Background(), trips.NewSelection(trips.AllCities))
	require.NoError(t, err)

	total := tripstest.ChicagoRows + tripstest.NewYorkCityRows + tripstest.WashingtonRows
	require.Equal(t, total, table.Len())
	assert.Equal(t, trips.Schema{HasGender: true, HasBirthYear: true, HasCity: true}, table.Schema)

	// fixed city order: Chicago, New York City, Washington
	assert.Equal(t, "Chicago", table.Trips[0].City)
	assert.Equal(t, "New York City", table.Trips[tripstest.ChicagoRows].City)
	last := table.Trips[total-1]
	assert.Equal(t, "Washington", last.City)
	assert.Equal(t, "", last.Gender)
	assert.Equal(t, 0, last.BirthYear)
	assert.InDelta(t, 637.251, last.Duration, 1e-9)

	assert.Equal(t, trips.ColCity, table.Schema.Columns()[0])
}

func TestLoader_Filters(t *testing.T) {
	loader := trips.NewLoader(tripstest.WriteCities(t), trips.WithLogger(quietLogger()))
	ctx := context.Background()

	tests := []struct {
		name     string
		sel      trips.Selection
		expected int
	}{
		{"Month only", trips.Selection{City: trips.Chicago, Month: time.January, Day: trips.AnyDay}, 2},
		{"Day only", trips.Selection{City: trips.AllCities, Month: trips.AnyMonth, Day: time.Wednesday}, 3},
		{"Month and day", trips.Selection{City: trips.Chicago, Month: time.January, Day: time.Tuesday}, 1},
		{"No match", trips.Selection{City: trips.Washington, Month: time.February, Day: trips.AnyDay}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := loader.Load(ctx, tt.sel)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, table.Len())
			for _, trip := range table.Trips {
				if tt.sel.Month != trips.AnyMonth {
					assert.Equal(t, tt.sel.Month, trip.StartTime.Month())
				}
				if tt.sel.Day != trips.AnyDay {
					assert.Equal(t, tt.sel.Day, trip.StartTime.Weekday())
				}
			}
		})
	}
}

func TestLoader_FilterOrderIndependent(t *testing.T) {
	loader := trips.NewLoader(tripstest.WriteCities(t), trips.WithLogger(quietLogger()))
	ctx := context.Background()

	everything, err := loader.Load(ctx, trips.NewSelection(trips.AllCities))
	require.NoError(t, err)

	for m := time.January; m <= time.June; m++ {
		for _, d := range []time.Weekday{time.Monday, time.Wednesday, time.Saturday} {
			combined, err := loader.Load(ctx, trips.Selection{City: trips.AllCities, Month: m, Day: d})
			require.NoError(t, err)

			monthThenDay := filter(filter(everything.Trips, trips.Selection{Month: m, Day: trips.AnyDay}), trips.Selection{Month: trips.AnyMonth, Day: d})
			dayThenMonth := filter(filter(everything.Trips, trips.Selection{Month: trips.AnyMonth, Day: d}), trips.Selection{Month: m, Day: trips.AnyDay})

			assert.Equal(t, monthThenDay, dayThenMonth)
			assert.Equal(t, monthThenDay, combined.Trips, "month=%s day=%s", m, d)
		}
	}
}

func filter(in []trips.Trip, sel trips.Selection) []trips.Trip {
	var out []trips.Trip
	for _, trip := range in {
		if sel.Matches(trip) {
			out = append(out, trip)
		}
	}
	return out
}

func TestLoader_UnknownCity(t *testing.T) {
	loader := trips.NewLoader(trips.NewSources(nil), trips.WithLogger(quietLogger()))

	_, err := loader.Load(context.Background(), trips.NewSelection(trips.Chicago))
	assert.ErrorIs(t, err, trips.ErrUnknownCity)
}

func TestLoader_CancelledContext(t *testing.T) {
	loader := trips.NewLoader(tripstest.WriteCities(t), trips.WithLogger(quietLogger()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.Load(ctx, trips.NewSelection(trips.AllCities))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoader_OpenFailure(t *testing.T) {
	sources := trips.NewSources(map[trips.City]string{trips.Chicago: "chicago.csv"})
	obs := &recordingObserver{}
	loader := trips.NewLoader(sources,
		trips.WithLogger(quietLogger()),
		trips.WithObserver(obs),
		trips.WithOpener(func(string) (io.ReadCloser, error) {
			return nil, errors.New("disk on fire")
		}),
	)

	_, err := loader.Load(context.Background(), trips.NewSelection(trips.Chicago))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
	assert.Error(t, obs.err)
}

func TestReadTable_Errors(t *testing.T) {
	header := ",Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n"

	tests := []struct {
		name       string
		content    string
		column     string
		line       int
		wantErrIs  error
		errContain string
	}{
		{
			name:      "Missing required column",
			content:   ",Start Time,End Time,Start Station,End Station,User Type\n",
			column:    trips.ColTripDuration,
			wantErrIs: trips.ErrMissingColumn,
		},
		{
			name:       "Empty file",
			content:    "",
			column:     "header",
			errContain: "empty file",
		},
		{
			name:       "Bad start time",
			content:    header + "1,2017-01-01 00:00:01,,60,A,B,Subscriber\n2,not a time,,60,A,B,Subscriber\n",
			column:     trips.ColStartTime,
			line:       3,
			errContain: "invalid timestamp",
		},
		{
			name:       "Bad duration",
			content:    header + "1,2017-01-01 00:00:01,,sixty,A,B,Subscriber\n",
			column:     trips.ColTripDuration,
			line:       2,
			errContain: "invalid trip duration",
		},
		{
			name:       "Negative duration",
			content:    header + "1,2017-01-01 00:00:01,,-5,A,B,Subscriber\n",
			column:     trips.ColTripDuration,
			line:       2,
			errContain: "out of range",
		},
		{
			name:       "Bad birth year",
			content:    ",Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Birth Year\n1,2017-01-01 00:00:01,,60,A,B,Subscriber,19x5\n",
			column:     trips.ColBirthYear,
			line:       2,
			errContain: "invalid birth year",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := trips.ReadTable(strings.NewReader(tt.content), "fixture.csv", trips.NewSelection(trips.Chicago), "")
			require.Error(t, err)

			var perr *trips.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, "fixture.csv", perr.File)
			assert.Equal(t, tt.column, perr.Column)
			assert.Equal(t, tt.line, perr.Line)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
			}
			if tt.errContain != "" {
				assert.Contains(t, err.Error(), tt.errContain)
			}
		})
	}
}

func TestReadTable_FilteredRowsStillValidated(t *testing.T) {
	content := ",Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n" +
		"1,2017-01-02 00:00:01,,60,A,B,Subscriber\n" +
		"2,2017-13-45 99:00:00,,60,A,B,Subscriber\n"

	sel := trips.Selection{City: trips.Chicago, Month: time.January, Day: trips.AnyDay}
	_, err := trips.ReadTable(strings.NewReader(content), "fixture.csv", sel, "")

	var perr *trips.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 3, perr.Line)
}

func TestReadTable_HeaderWithBOMAndTagging(t *testing.T) {
	content := "\ufeffStart Time,End Time,Trip Duration,Start Station,End Station,User Type\n" +
		"2017-01-02 00:00:01,2017-01-02 00:01:01,60,A,B,Subscriber\n"

	table, err := trips.ReadTable(strings.NewReader(content), "fixture.csv", trips.NewSelection(trips.Chicago), "Chicago")
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "Chicago", table.Trips[0].City)
	assert.True(t, table.Schema.HasCity)
	assert.False(t, table.Schema.HasGender)
}

func TestParseError_Message(t *testing.T) {
	err := &trips.ParseError{File: "a.csv", Line: 7, Column: "Start Time", Err: errors.New("boom")}
	assert.Equal(t, `parse a.csv:7: column "Start Time": boom`, err.Error())

	header := &trips.ParseError{File: "a.csv", Column: "Trip Duration", Err: trips.ErrMissingColumn}
	assert.Equal(t, `parse a.csv: column "Trip Duration": required column missing`, header.Error())
}
