package paginate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCommand is returned for input that is neither a positive row
// count nor a known keyword.
var ErrInvalidCommand = errors.New("invalid command")

// Action is what a browsing command asks for.
type Action int

const (
	// Next shows the next Rows rows.
	Next Action = iota
	// ShowAll prints the entire table and ends browsing.
	ShowAll
	// Abort ends browsing.
	Abort
)

func (a Action) String() string {
	switch a {
	case Next:
		return "next"
	case ShowAll:
		return "show-all"
	case Abort:
		return "abort"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Command is a parsed browsing command.
type Command struct {
	Action Action
	Rows   int
}

var keywords = map[string]Command{
	"default":  {Action: Next, Rows: DefaultSize},
	"yes":      {Action: Next, Rows: DefaultSize},
	"y":        {Action: Next, Rows: DefaultSize},
	"show-all": {Action: ShowAll},
	"df":       {Action: ShowAll},
	"abort":    {Action: Abort},
	"no":       {Action: Abort},
	"n":        {Action: Abort},
}

// ParseCommand parses a positive row count or one of the keywords default
// (also yes), show-all (also df) and abort (also no). The row count of
// default is size, or DefaultSize when size is not positive.
func ParseCommand(input string, size int) (Command, error) {
	s := strings.ToLower(strings.TrimSpace(input))

	if cmd, ok := keywords[s]; ok {
		if cmd.Action == Next && size > 0 {
			cmd.Rows = size
		}
		return cmd, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return Command{}, fmt.Errorf("%w: %q", ErrInvalidCommand, input)
	}
	return Command{Action: Next, Rows: n}, nil
}
