package ui

import (
	"errors"
	"fmt"
	"io"

	"bikeshare/internal/trips"
	"bikeshare/internal/utils"
)

const (
	cityQuestion  = "Which city should we select? Enter Chicago, New York City, Washington, or 'all' for all three cities:"
	monthQuestion = "Enter the name of the month you are interested in, or 'all':"
	dayQuestion   = "Enter the day of the week to investigate, or 'all':"
	confirmPrompt = "Enter 'yes' to proceed with this selection or 'no' to start over:"
)

func validateWith[T any](parse func(string) (T, error)) Validator {
	return func(answer string) error {
		_, err := parse(answer)
		return err
	}
}

// AskSelection asks for the city, month and day filters.
func AskSelection(p Prompter, out io.Writer) (trips.Selection, error) {
	var sel trips.Selection

	answer, err := p.Ask(cityQuestion, validateWith(trips.ParseCity))
	if err != nil {
		return sel, err
	}
	if sel.City, err = trips.ParseCity(answer); err != nil {
		return sel, err
	}

	fmt.Fprintln(out, subtleStyle.Render("Trip data is available for January to June 2017."))
	answer, err = p.Ask(monthQuestion, validateWith(trips.ParseMonth))
	if err != nil {
		return sel, err
	}
	if sel.Month, err = trips.ParseMonth(answer); err != nil {
		return sel, err
	}

	answer, err = p.Ask(dayQuestion, validateWith(trips.ParseDay))
	if err != nil {
		return sel, err
	}
	if sel.Day, err = trips.ParseDay(answer); err != nil {
		return sel, err
	}

	return sel, nil
}

var errYesNo = errors.New("please enter 'yes' to proceed or 'no' to restart")

func parseYesNo(answer string) (bool, error) {
	switch utils.NormalizeInput(answer) {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	default:
		return false, errYesNo
	}
}

// ConfirmSelection shows sel and asks whether to continue with it.
func ConfirmSelection(p Prompter, out io.Writer, sel trips.Selection) (bool, error) {
	fmt.Fprintln(out, "Thank you! The following selection was registered:")
	fmt.Fprintf(out, "  City:            %s\n", sel.City.Title())
	fmt.Fprintf(out, "  Month:           %s\n", sel.MonthLabel())
	fmt.Fprintf(out, "  Day of the week: %s\n", sel.DayLabel())

	answer, err := p.Ask(confirmPrompt, validateWith(parseYesNo))
	if err != nil {
		return false, err
	}
	return parseYesNo(answer)
}

// AskReport shows the menu for sel and asks which report to run.
func AskReport(p Prompter, out io.Writer, sel trips.Selection) (Report, error) {
	fmt.Fprintln(out, utils.Rule(ruleWidth))
	fmt.Fprintf(out, "You can access %s 2017.\n", sel.Describe())
	fmt.Fprint(out, menuText())
	fmt.Fprintln(out, utils.Rule(ruleWidth))

	answer, err := p.Ask("Which report would you like to see?", validateWith(ParseReport))
	if err != nil {
		return 0, err
	}
	return ParseReport(answer)
}
