package stats

import "bikeshare/internal/trips"

// PreviewRows is the number of rows shown at each end of a summary preview.
const PreviewRows = 5

// Summary describes the shape of a loaded table with a short preview.
type Summary struct {
	Rows    int
	Columns []string
	Head    [][]string
	// Tail is empty when Head already covers the whole table.
	Tail [][]string
}

// Summarize describes t. Unlike the other reports it accepts an empty table.
func Summarize(t *trips.Table) Summary {
	s := Summary{
		Rows:    t.Len(),
		Columns: t.Schema.Columns(),
	}
	if s.Rows <= 2*PreviewRows {
		s.Head = t.Rows(0, s.Rows)
		return s
	}
	s.Head = t.Rows(0, PreviewRows)
	s.Tail = t.Rows(s.Rows-PreviewRows, s.Rows)
	return s
}
