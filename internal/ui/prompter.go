package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInputClosed is returned when the input stream ends before an answer.
var ErrInputClosed = errors.New("input closed")

// ErrAborted is returned when the user interrupts a prompt (Ctrl-C).
var ErrAborted = errors.New("aborted by user")

// Validator checks an answer; a non-nil error makes the prompter ask again.
type Validator func(answer string) error

// Prompter asks the user for input.
type Prompter interface {
	// Ask repeats the question until validate accepts the answer.
	Ask(message string, validate Validator) (string, error)
	// Pause waits for the user to acknowledge message.
	Pause(message string) error
}

// LinePrompter reads answers line by line. It is used when stdin is not a
// terminal and in tests.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a LinePrompter reading from in and echoing
// questions and hints to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Ask implements Prompter.
func (p *LinePrompter) Ask(message string, validate Validator) (string, error) {
	for {
		fmt.Fprintln(p.out, message)

		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if validate == nil {
			return answer, nil
		}
		if verr := validate(answer); verr != nil {
			fmt.Fprintf(p.out, "Invalid entry (%v) - please try again.\n", verr)
			continue
		}
		return answer, nil
	}
}

// Pause implements Prompter.
func (p *LinePrompter) Pause(message string) error {
	fmt.Fprintln(p.out, message)
	_, err := p.readLine()
	return err
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Wrapper for survey.AskOne to allow mocking in tests
var askOneFunc = survey.AskOne

// SurveyPrompter asks questions on an interactive terminal through survey.
// Invalid answers are reported inline and the question is asked again.
type SurveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter creates a SurveyPrompter; opts are passed to every prompt.
func NewSurveyPrompter(opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{opts: opts}
}

// Ask implements Prompter.
func (p *SurveyPrompter) Ask(message string, validate Validator) (string, error) {
	opts := append([]survey.AskOpt{}, p.opts...)
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, ok := ans.(string)
			if !ok {
				return fmt.Errorf("unexpected answer type %T", ans)
			}
			return validate(s)
		}))
	}

	var answer string
	if err := askOneFunc(&survey.Input{Message: message}, &answer, opts...); err != nil {
		return "", surveyError(err)
	}
	return answer, nil
}

// Pause implements Prompter.
func (p *SurveyPrompter) Pause(message string) error {
	var ignored string
	if err := askOneFunc(&survey.Input{Message: message}, &ignored, p.opts...); err != nil {
		return surveyError(err)
	}
	return nil
}

func surveyError(err error) error {
	switch {
	case errors.Is(err, terminal.InterruptErr):
		return ErrAborted
	case errors.Is(err, io.EOF):
		return ErrInputClosed
	default:
		return err
	}
}
