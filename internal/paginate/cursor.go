// Package paginate implements the scroll cursor used to browse raw trip rows.
package paginate

// DefaultSize is the window size used when none is given.
const DefaultSize = 5

// Cursor is a forward-only window [Start, End) over Total rows.
type Cursor struct {
	start int
	end   int
	total int
	done  bool
}

// NewCursor opens a window over the first size rows (DefaultSize when size
// is not positive). A window that already reaches the last row is terminal.
func NewCursor(total, size int) *Cursor {
	if size <= 0 {
		size = DefaultSize
	}
	if total < 0 {
		total = 0
	}
	c := &Cursor{total: total, end: min(size, total)}
	c.done = c.end >= total
	return c
}

// Window returns the current row range [start, end).
func (c *Cursor) Window() (start, end int) {
	return c.start, c.end
}

// Total returns the number of rows under the cursor.
func (c *Cursor) Total() int {
	return c.total
}

// Remaining returns the number of rows after the current window.
func (c *Cursor) Remaining() int {
	return c.total - c.end
}

// Done reports whether the cursor reached a terminal state.
func (c *Cursor) Done() bool {
	return c.done
}

// AtEnd reports whether the window covers the last row.
func (c *Cursor) AtEnd() bool {
	return c.end >= c.total
}

// Advance moves the window to the next n rows. When n or fewer rows remain
// the window becomes exactly the remaining rows and the cursor turns
// terminal; Advance reports whether that happened. Calls on a terminal
// cursor, or with n < 1, leave it unchanged.
func (c *Cursor) Advance(n int) bool {
	if c.done || n < 1 {
		return c.done
	}

	remaining := c.Remaining()
	if remaining <= n {
		c.start, c.end = c.end, c.total
		c.done = true
		return true
	}

	c.start, c.end = c.end, c.end+n
	return false
}

// Stop makes the cursor terminal without moving the window.
func (c *Cursor) Stop() {
	c.done = true
}
