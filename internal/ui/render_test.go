package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"bikeshare/internal/stats"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_IndexColumn(t *testing.T) {
	withProfile(t, termenv.Ascii)

	out := renderTable([]string{"Start Station", "End Station"}, [][]string{
		{"A", "B"},
		{"C", "D"},
	}, 5)

	assert.Contains(t, out, "#")
	assert.Contains(t, out, "Start Station")
	assert.Contains(t, out, "5")
	assert.Contains(t, out, "6")
	assert.Less(t, strings.Index(out, "A"), strings.Index(out, "C"))
}

func TestPrintFooter(t *testing.T) {
	withProfile(t, termenv.Ascii)

	var buf bytes.Buffer
	printFooter(&buf, 1500*time.Millisecond)

	assert.Contains(t, buf.String(), "This took 1.500000 seconds.")
}

func TestWriteDurationStats(t *testing.T) {
	withProfile(t, termenv.Ascii)

	var buf bytes.Buffer
	writeDurationStats(&buf, stats.DurationStats{Total: 3661, Longest: 3661, Mean: 90})

	out := buf.String()
	assert.Contains(t, out, "1 hours, 1 minutes, and 1.0 seconds")
	assert.Contains(t, out, "1 minutes, and 30.0 seconds")
}

func TestWriteStationStats_RouteLabels(t *testing.T) {
	withProfile(t, termenv.Ascii)

	tests := []struct {
		name  string
		route stats.Route
		want  string
	}{
		{"pair", stats.Route{From: "A", To: "B", Count: 5}, "between 'A' and 'B' (5 trips in either direction)"},
		{"round trip", stats.Route{From: "C", To: "C", Count: 2}, "starting and ending at 'C' (2 trips)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			writeStationStats(&buf, stats.StationStats{PopularRoute: tt.route})
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestWriteUserStats_MissingColumns(t *testing.T) {
	withProfile(t, termenv.Ascii)

	var buf bytes.Buffer
	writeUserStats(&buf, stats.UserStats{
		UserTypes: []stats.CategoryCount{{Label: "Customer", Count: 1}, {Label: "Subscriber", Count: 2}},
	})

	out := buf.String()
	assert.Contains(t, out, "2 trips by Subscriber")
	assert.Contains(t, out, "No gender data is available in this data set.")
	assert.Contains(t, out, "No birth year data is available in this data set.")
}

func TestWriteUserStats_Demographics(t *testing.T) {
	withProfile(t, termenv.Ascii)

	var buf bytes.Buffer
	writeUserStats(&buf, stats.UserStats{
		HasGender:       true,
		Genders:         []stats.CategoryCount{{Label: "Female", Count: 1}},
		HasBirthYear:    true,
		Oldest:          1950,
		Youngest:        2001,
		MostCommon:      1992,
		MostCommonCount: 4,
	})

	out := buf.String()
	assert.Contains(t, out, "1 trips by Female")
	assert.Contains(t, out, "born in 1950; the youngest in 2001")
	assert.Contains(t, out, "The most common year of birth is 1992 (4 trips)")
}

func TestWriteSummary(t *testing.T) {
	withProfile(t, termenv.Ascii)

	s := stats.Summary{
		Rows:    7,
		Columns: []string{"Start Station", "End Station"},
		Head:    [][]string{{"A", "B"}},
		Tail:    [][]string{{"Y", "Z"}},
	}

	var buf bytes.Buffer
	writeSummary(&buf, s, func(md string) (string, error) { return md, nil })

	out := buf.String()
	assert.Contains(t, out, "the dataset has 7 rows and contains the following 2 columns")
	assert.Contains(t, out, "- Start Station")
	assert.Contains(t, out, "Preview:")
	assert.Contains(t, out, "...")
}

func TestMarkdownRenderer_Plain(t *testing.T) {
	out, err := markdownRenderer(true)("# Summary\n\nSeven rows.")
	require.NoError(t, err)

	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "Seven rows.")
	assert.NotContains(t, out, "\x1b[")
}
