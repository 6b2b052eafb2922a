package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"bikeshare/internal/paginate"
	"bikeshare/internal/trips"
	"bikeshare/internal/utils"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// BrowseFunc pages through a loaded table. Anything that should stay on
// screen after browsing is written to out.
type BrowseFunc func(out io.Writer, data *trips.Table, pageSize int) error

// LineBrowser browses with the question and answer loop of p.
func LineBrowser(p Prompter) BrowseFunc {
	return func(out io.Writer, data *trips.Table, pageSize int) error {
		return Browse(p, out, data, pageSize)
	}
}

// NewTableBrowser browses in a bubbletea view on an interactive terminal.
// It accepts the same commands as the line browser; an empty line shows the
// next page. Ctrl-C ends the whole session with ErrAborted.
func NewTableBrowser(opts ...tea.ProgramOption) BrowseFunc {
	return func(out io.Writer, data *trips.Table, pageSize int) error {
		fmt.Fprintf(out, "The selected data table has %s rows.\n", utils.FormatCount(data.Len()))
		if data.Empty() {
			fmt.Fprintln(out, subtleStyle.Render("There are no rows to show."))
			return nil
		}

		progOpts := append([]tea.ProgramOption{tea.WithOutput(out)}, opts...)
		final, err := tea.NewProgram(newBrowseModel(data, pageSize), progOpts...).Run()
		if err != nil {
			return fmt.Errorf("raw data browser: %w", err)
		}

		m := final.(browseModel)
		switch {
		case m.aborted:
			return ErrAborted
		case m.showAll:
			return writeAllRows(out, data)
		}
		return nil
	}
}

const maxColumnWidth = 32

type browseModel struct {
	data    *trips.Table
	size    int
	cursor  *paginate.Cursor
	view    table.Model
	pages   paginator.Model
	input   string
	err     error
	showAll bool
	aborted bool
}

func newBrowseModel(data *trips.Table, size int) browseModel {
	if size <= 0 {
		size = paginate.DefaultSize
	}

	t := table.New(table.WithFocused(true))
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	p := paginator.New()
	p.Type = paginator.Arabic
	p.PerPage = 1
	p.SetTotalPages(data.Len())

	m := browseModel{
		data:   data,
		size:   size,
		cursor: paginate.NewCursor(data.Len(), size),
		view:   t,
		pages:  p,
	}
	m.refresh()
	return m
}

// refresh loads the cursor window into the table view.
func (m *browseModel) refresh() {
	start, end := m.cursor.Window()
	headers := append([]string{"#"}, m.data.Schema.Columns()...)

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}

	cells := m.data.Rows(start, end)
	rows := make([]table.Row, len(cells))
	for i, r := range cells {
		row := append(table.Row{strconv.Itoa(start + i)}, r...)
		for j, cell := range row {
			widths[j] = max(widths[j], min(lipgloss.Width(cell), maxColumnWidth))
		}
		rows[i] = row
	}

	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		columns[i] = table.Column{Title: h, Width: widths[i]}
	}

	m.view.SetRows(nil)
	m.view.SetColumns(columns)
	m.view.SetRows(rows)
	m.view.SetHeight(len(rows) + 2)
	m.view.GotoTop()
	// one paginator page per row, so the view reads "<last shown>/<total>"
	m.pages.Page = end - 1
}

func (m browseModel) Init() tea.Cmd {
	if m.cursor.Done() {
		return tea.Quit
	}
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC:
		m.aborted = true
		m.cursor.Stop()
		return m, tea.Quit
	case tea.KeyEsc:
		m.cursor.Stop()
		return m, tea.Quit
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeyUp, tea.KeyDown:
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd
	case tea.KeyRunes:
		m.input += string(key.Runes)
	}
	return m, nil
}

func (m browseModel) submit() (tea.Model, tea.Cmd) {
	input := m.input
	m.input = ""
	if strings.TrimSpace(input) == "" {
		input = "default"
	}

	cmd, err := paginate.ParseCommand(input, m.size)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil

	switch cmd.Action {
	case paginate.Next:
		m.cursor.Advance(cmd.Rows)
		m.refresh()
		if m.cursor.Done() {
			return m, tea.Quit
		}
	case paginate.ShowAll:
		m.showAll = true
		m.cursor.Stop()
		return m, tea.Quit
	case paginate.Abort:
		m.cursor.Stop()
		return m, tea.Quit
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder
	b.WriteString(m.view.View())
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("Rows shown: " + m.pages.View()))
	b.WriteString("\n")

	switch {
	case m.showAll || m.aborted:
		return b.String()
	case m.cursor.Done():
		if m.cursor.AtEnd() {
			b.WriteString(successStyle.Render(lastRowsMessage) + "\n")
		}
		return b.String()
	}

	b.WriteString(subtleStyle.Render(fmt.Sprintf(
		"enter: next %d rows • <number> enter: that many rows • show-all • esc or abort: back to menu", m.size)))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Invalid entry (%v) - please try again.", m.err)) + "\n")
	}
	b.WriteString("> " + m.input)
	return b.String()
}
