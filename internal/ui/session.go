package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"bikeshare/internal/paginate"
	"bikeshare/internal/stats"
	"bikeshare/internal/trips"
)

// TableLoader loads the trips of a selection.
type TableLoader interface {
	Load(ctx context.Context, sel trips.Selection) (*trips.Table, error)
}

// ReportObserver is notified after every report.
type ReportObserver interface {
	ObserveReport(report string, elapsed time.Duration)
}

const pausePrompt = "[ENTER] to return to the selection menu."

// Session runs the explorer: select filters, load once, then show reports
// until the user restarts or exits.
type Session struct {
	prompter Prompter
	out      io.Writer
	loader   TableLoader
	observer ReportObserver
	logger   *slog.Logger
	pageSize int
	markdown func(string) (string, error)
	browse   BrowseFunc
}

// Option configures a Session.
type Option func(*Session)

// WithPageSize sets the default raw-data window.
func WithPageSize(n int) Option {
	return func(s *Session) { s.pageSize = n }
}

// WithReportObserver registers an observer for report timings.
func WithReportObserver(o ReportObserver) Option {
	return func(s *Session) { s.observer = o }
}

// WithSessionLogger sets the session logger.
func WithSessionLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithBrowser replaces the line browser used for raw data. A nil browser
// keeps the default.
func WithBrowser(b BrowseFunc) Option {
	return func(s *Session) {
		if b != nil {
			s.browse = b
		}
	}
}

// WithPlainMarkdown renders markdown without terminal styling.
func WithPlainMarkdown(plain bool) Option {
	return func(s *Session) { s.markdown = markdownRenderer(plain) }
}

// NewSession creates a Session reading answers from p and writing reports to out.
func NewSession(p Prompter, out io.Writer, loader TableLoader, opts ...Option) *Session {
	s := &Session{
		prompter: p,
		out:      out,
		loader:   loader,
		logger:   slog.Default(),
		pageSize: paginate.DefaultSize,
		markdown: markdownRenderer(!ColorEnabled()),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.browse == nil {
		s.browse = LineBrowser(p)
	}
	return s
}

// Run drives the session until the user exits, the input ends or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	printHeader(s.out, "Hello! Let's explore some US bikeshare data!")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		sel, err := s.selectFilters()
		if err != nil {
			return s.finish(err)
		}

		table, err := s.loader.Load(ctx, sel)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.reportLoadError(err)
			continue
		}

		next, err := s.explore(ctx, sel, table)
		if err != nil {
			return s.finish(err)
		}
		if next == ReportExit {
			fmt.Fprintln(s.out, "... thanks for using this data browser! Till next time!")
			return nil
		}
		fmt.Fprintln(s.out, "... restarting")
	}
}

func (s *Session) selectFilters() (trips.Selection, error) {
	for {
		sel, err := AskSelection(s.prompter, s.out)
		if err != nil {
			return sel, err
		}
		ok, err := ConfirmSelection(s.prompter, s.out, sel)
		if err != nil {
			return sel, err
		}
		if ok {
			return sel, nil
		}
		fmt.Fprintln(s.out, "Very well - let's restart:")
	}
}

func (s *Session) reportLoadError(err error) {
	var perr *trips.ParseError
	switch {
	case errors.As(err, &perr):
		printError(s.out, fmt.Sprintf("The selected data could not be read: %v", perr))
	case errors.Is(err, trips.ErrUnknownCity):
		printError(s.out, fmt.Sprintf("No data file is configured for this city: %v", err))
	default:
		printError(s.out, fmt.Sprintf("Failed to load the selected data: %v", err))
	}
	fmt.Fprintln(s.out, "Please make a new selection.")
}

// explore shows reports for one loaded table and returns the control report
// that ended the loop.
func (s *Session) explore(ctx context.Context, sel trips.Selection, table *trips.Table) (Report, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		r, err := AskReport(s.prompter, s.out, sel)
		if err != nil {
			return 0, err
		}
		if r.Control() {
			fmt.Fprintln(s.out, "Alright...")
			return r, nil
		}

		if err := s.show(r, table); err != nil {
			return 0, err
		}
	}
}

func (s *Session) show(r Report, table *trips.Table) error {
	handler := reportHandlers[r]
	if handler == nil {
		return fmt.Errorf("%w: no handler for %s", ErrUnknownReport, r)
	}

	start := time.Now()
	err := handler(s, table)
	elapsed := time.Since(start)

	if s.observer != nil {
		s.observer.ObserveReport(r.String(), elapsed)
	}
	s.logger.Debug("Report shown", "report", r.String(), "rows", table.Len(), "elapsed", elapsed)

	switch {
	case errors.Is(err, stats.ErrInsufficientData):
		printError(s.out, "Insufficient data for this report: the selection contains no trips.")
	case err != nil:
		return err
	default:
		printFooter(s.out, elapsed)
	}

	return s.prompter.Pause(pausePrompt)
}

// finish turns the ways a user can leave into a clean exit.
func (s *Session) finish(err error) error {
	if errors.Is(err, ErrInputClosed) || errors.Is(err, ErrAborted) {
		fmt.Fprintln(s.out, "\nGoodbye!")
		return nil
	}
	return err
}
