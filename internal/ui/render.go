package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"bikeshare/internal/stats"
	"bikeshare/internal/trips"
	"bikeshare/internal/utils"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const ruleWidth = 60

func printHeader(w io.Writer, title string) {
	fmt.Fprintln(w, utils.Rule(ruleWidth))
	fmt.Fprintln(w, headerStyle.Render(title))
	fmt.Fprintln(w)
}

func printFooter(w io.Writer, elapsed time.Duration) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, subtleStyle.Render(fmt.Sprintf("This took %s seconds.", strconv.FormatFloat(elapsed.Seconds(), 'f', 6, 64))))
	fmt.Fprintln(w, utils.Rule(ruleWidth))
}

func printError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(msg))
}

func label(s string) string { return labelStyle.Render(s) }

func value(s string) string { return valueStyle.Render(s) }

func count(n int) string { return value(utils.FormatCount(n)) }

// renderTable draws rows under headers. The first column carries the row
// index starting at offset.
func renderTable(headers []string, rows [][]string, offset int) string {
	withIndex := make([][]string, len(rows))
	for i, row := range rows {
		withIndex[i] = append([]string{strconv.Itoa(offset + i)}, row...)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(append([]string{"#"}, headers...)...).
		Rows(withIndex...)

	return t.String()
}

// streamChunk is the number of rows formatted and flushed at a time when a
// whole table is printed.
const streamChunk = 1000

// writeAllRows prints every row of t as aligned plain text. Rows are
// flushed chunk by chunk, so output starts at once and memory stays bounded
// on city files with hundreds of thousands of trips.
func writeAllRows(w io.Writer, t *trips.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\t%s\n", strings.Join(t.Schema.Columns(), "\t"))

	for start := 0; start < t.Len(); start += streamChunk {
		end := min(start+streamChunk, t.Len())
		for i, row := range t.Rows(start, end) {
			fmt.Fprintf(tw, "%d\t%s\n", start+i, strings.Join(row, "\t"))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func writeTimeStats(w io.Writer, s stats.TimeStats) {
	fmt.Fprintf(w, "%s %s (%s trips).\n", label("The most popular month is"), value(s.Month.String()), count(s.MonthCount))
	fmt.Fprintf(w, "%s %s (%s trips).\n", label("The most popular day of the week is"), value(s.Weekday.String()), count(s.WeekdayCount))
	fmt.Fprintf(w, "%s %s (%s trips).\n", label("The most popular hour to start a trip is"), value(fmt.Sprintf("%d:00", s.Hour)), count(s.HourCount))
}

func writeStationStats(w io.Writer, s stats.StationStats) {
	fmt.Fprintf(w, "%s '%s' (%s trips).\n", label("The most popular station to start a trip is"), value(s.PopularStart.Label), count(s.PopularStart.Count))
	fmt.Fprintf(w, "The most common destination from there is '%s' (%s trips).\n\n", value(s.StartDestination.Label), count(s.StartDestination.Count))

	fmt.Fprintf(w, "%s '%s' (%s trips).\n", label("The most popular destination is"), value(s.PopularEnd.Label), count(s.PopularEnd.Count))
	fmt.Fprintf(w, "Most trips ending there started at '%s' (%s trips).\n\n", value(s.EndOrigin.Label), count(s.EndOrigin.Count))

	r := s.PopularRoute
	if r.RoundTrip() {
		fmt.Fprintf(w, "%s '%s' (%s trips).\n", label("The most popular trips were round trips starting and ending at"), value(r.From), count(r.Count))
		return
	}
	fmt.Fprintf(w, "%s '%s' and '%s' (%s trips in either direction).\n", label("The most popular trips were between"), value(r.From), value(r.To), count(r.Count))
}

func writeDurationStats(w io.Writer, d stats.DurationStats) {
	fmt.Fprintf(w, "%s %s.\n", label("The accumulated travel time of all trips is"), value(d.TotalText()))
	fmt.Fprintf(w, "%s %s.\n", label("The longest trip took"), value(d.LongestText()))
	fmt.Fprintf(w, "%s %s.\n", label("The average trip took"), value(d.MeanText()))
}

func writeUserStats(w io.Writer, s stats.UserStats) {
	fmt.Fprintln(w, label("Trips by user type:"))
	for _, c := range s.UserTypes {
		fmt.Fprintf(w, "   %s trips by %s\n", count(c.Count), value(c.Label))
	}
	fmt.Fprintln(w)

	if s.HasGender {
		fmt.Fprintln(w, label("Trips by gender:"))
		for _, c := range s.Genders {
			fmt.Fprintf(w, "   %s trips by %s\n", count(c.Count), value(c.Label))
		}
	} else {
		fmt.Fprintln(w, subtleStyle.Render("No gender data is available in this data set."))
	}
	fmt.Fprintln(w)

	if s.HasBirthYear {
		fmt.Fprintf(w, "%s %s; %s %s.\n",
			label("The oldest rider was born in"), value(strconv.Itoa(s.Oldest)),
			label("the youngest in"), value(strconv.Itoa(s.Youngest)))
		fmt.Fprintf(w, "%s %s (%s trips).\n", label("The most common year of birth is"), value(strconv.Itoa(s.MostCommon)), count(s.MostCommonCount))
	} else {
		fmt.Fprintln(w, subtleStyle.Render("No birth year data is available in this data set."))
	}
}

// summaryMarkdown describes the table shape as markdown for glamour.
func summaryMarkdown(s stats.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "According to your selection, the dataset has %s rows and contains the following %d columns:\n\n",
		utils.FormatCount(s.Rows), len(s.Columns))
	for _, c := range s.Columns {
		fmt.Fprintf(&b, "- %s\n", c)
	}
	b.WriteString("\nChoose `raw` from the main menu to page through the entire table.\n")
	return b.String()
}

// markdownRenderer renders markdown for the terminal; plain selects the
// style without escape sequences.
func markdownRenderer(plain bool) func(string) (string, error) {
	return func(md string) (string, error) {
		style := glamour.WithAutoStyle()
		if plain {
			style = glamour.WithStandardStyle("notty")
		}
		r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
		if err != nil {
			return "", err
		}
		return r.Render(md)
	}
}

func writeSummary(w io.Writer, s stats.Summary, render func(string) (string, error)) {
	md := summaryMarkdown(s)
	out, err := render(md)
	if err != nil {
		out = md
	}
	fmt.Fprint(w, out)

	if s.Rows == 0 {
		return
	}
	fmt.Fprintln(w, label("Preview:"))
	fmt.Fprintln(w, renderTable(s.Columns, s.Head, 0))
	if len(s.Tail) > 0 {
		fmt.Fprintln(w, subtleStyle.Render("..."))
		fmt.Fprintln(w, renderTable(s.Columns, s.Tail, s.Rows-len(s.Tail)))
	}
}
