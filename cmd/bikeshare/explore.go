package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"bikeshare/internal/config"
	"bikeshare/internal/trips"
	"bikeshare/internal/ui"

	"github.com/AlecAivazis/survey/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isTerminal is swapped in tests.
var isTerminal = func(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

func terminalFile(v any) (*os.File, bool) {
	f, ok := v.(*os.File)
	if !ok || !isTerminal(f.Fd()) {
		return nil, false
	}
	return f, true
}

// newFrontEnd uses survey questions and the bubbletea table browser when
// both ends are a terminal, and plain line reading otherwise (pipes, files,
// tests). A nil browser keeps the session's line browser.
func newFrontEnd(in io.Reader, out io.Writer) (ui.Prompter, ui.BrowseFunc) {
	inFile, inTTY := terminalFile(in)
	outFile, outTTY := terminalFile(out)
	if inTTY && outTTY {
		return ui.NewSurveyPrompter(survey.WithStdio(inFile, outFile, os.Stderr)),
			ui.NewTableBrowser(tea.WithInput(inFile))
	}
	return ui.NewLinePrompter(in, out), nil
}

func runExplorer(cmd *cobra.Command, args []string) error {
	settings := config.Current()
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()

	if _, tty := terminalFile(out); settings.NoColor || !tty {
		ui.DisableColor()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := slog.Default()
	loader := trips.NewLoader(settings.Sources(),
		trips.WithLogger(logger),
		trips.WithObserver(metrics),
	)
	prompter, browser := newFrontEnd(in, out)
	session := ui.NewSession(prompter, out, loader,
		ui.WithPageSize(settings.PageSize),
		ui.WithBrowser(browser),
		ui.WithReportObserver(metrics),
		ui.WithSessionLogger(logger),
		ui.WithPlainMarkdown(!ui.ColorEnabled()),
	)

	logger.Debug("Starting explorer", "data_dir", settings.DataDir, "page_size", settings.PageSize)
	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
