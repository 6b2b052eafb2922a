package trips

import (
	"errors"
	"fmt"
)

// ErrUnknownCity is returned when a selection names a city without a source file.
var ErrUnknownCity = errors.New("unknown city")

// ParseError reports a dataset that could not be loaded. Line is the 1-based
// line in the source file, or 0 when the problem is with the header.
type ParseError struct {
	File   string
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parse %s: column %q: %v", e.File, e.Column, e.Err)
	}
	return fmt.Sprintf("parse %s:%d: column %q: %v", e.File, e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrMissingColumn is wrapped by a ParseError when a required header is absent.
var ErrMissingColumn = errors.New("required column missing")
