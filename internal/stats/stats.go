// Package stats computes the descriptive reports over a loaded trip table.
// Every query is read-only and returns ErrInsufficientData for an empty table.
package stats

import (
	"errors"

	"bikeshare/internal/trips"
)

// ErrInsufficientData is returned when a table has no rows to aggregate.
var ErrInsufficientData = errors.New("insufficient data")

func requireRows(t *trips.Table) error {
	if t.Empty() {
		return ErrInsufficientData
	}
	return nil
}

// CategoryCount is a label and the number of trips carrying it.
type CategoryCount struct {
	Label string
	Count int
}

// counter counts string labels and remembers the order in which they were
// first seen, which is the tie-break for top.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(label string) {
	if _, ok := c.counts[label]; !ok {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

func (c *counter) len() int {
	return len(c.order)
}

// top returns the most frequent label; ties go to the label seen first.
func (c *counter) top() CategoryCount {
	var best CategoryCount
	for _, label := range c.order {
		if n := c.counts[label]; n > best.Count {
			best = CategoryCount{Label: label, Count: n}
		}
	}
	return best
}
