package ui

import (
	"fmt"
	"io"

	"bikeshare/internal/paginate"
	"bikeshare/internal/trips"
	"bikeshare/internal/utils"
)

const lastRowsMessage = "That displayed the last rows of the table!"

// Browse pages through table in windows of pageSize rows until the user
// aborts, asks for the whole table, or the last row has been shown.
func Browse(p Prompter, out io.Writer, table *trips.Table, pageSize int) error {
	if pageSize <= 0 {
		pageSize = paginate.DefaultSize
	}

	fmt.Fprintln(out, "Enter the number of rows to see next, 'default' for the next", pageSize,
		"rows, 'show-all' to print the entire table, or 'abort' to return to the menu.")
	fmt.Fprintf(out, "The selected data table has %s rows.\n", utils.FormatCount(table.Len()))

	if table.Empty() {
		fmt.Fprintln(out, subtleStyle.Render("There are no rows to show."))
		return nil
	}

	cols := table.Schema.Columns()
	validate := validateWith(func(s string) (paginate.Command, error) {
		return paginate.ParseCommand(s, pageSize)
	})

	cursor := paginate.NewCursor(table.Len(), pageSize)
	for {
		start, end := cursor.Window()
		fmt.Fprintln(out, renderTable(cols, table.Rows(start, end), start))

		if cursor.Done() {
			if cursor.AtEnd() {
				fmt.Fprintln(out, successStyle.Render(lastRowsMessage))
			}
			return nil
		}

		answer, err := p.Ask(fmt.Sprintf("Rows %d-%d of %d. How many rows next?", start+1, end, cursor.Total()), validate)
		if err != nil {
			return err
		}
		cmd, err := paginate.ParseCommand(answer, pageSize)
		if err != nil {
			return err
		}

		switch cmd.Action {
		case paginate.Next:
			cursor.Advance(cmd.Rows)
		case paginate.ShowAll:
			cursor.Stop()
			return writeAllRows(out, table)
		case paginate.Abort:
			cursor.Stop()
			return nil
		}
	}
}
