package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// Prompter asks the user questions during an interactive session.
type Prompter interface {
	// Ask returns one trimmed answer.
	Ask(message string) (string, error)
	// Select shows numbered options and returns either the 1-based number
	// of the chosen option or whatever the user typed.
	Select(message string, options []string) (string, error)
	// Confirm returns true only for an explicit yes.
	Confirm(message string) (bool, error)
}

// NewPrompter returns a survey-backed prompter when in and out are both
// terminals and a plain line prompter otherwise.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	inFile, okIn := in.(*os.File)
	outFile, okOut := out.(*os.File)
	if okIn && okOut && isTerminal(inFile) && isTerminal(outFile) {
		return &surveyPrompter{stdio: survey.WithStdio(inFile, outFile, os.Stderr)}
	}

	return NewLinePrompter(in, out)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// LinePrompter reads answers line by line; used for pipes, files and tests.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter reads from in and writes prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Ask prints "message: " and reads one line. io.EOF is returned only when
// no text precedes the end of input.
func (p *LinePrompter) Ask(message string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", message)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// Select prints the message and the numbered options, then reads the choice.
func (p *LinePrompter) Select(message string, options []string) (string, error) {
	fmt.Fprintln(p.out, message)
	for i, opt := range options {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, opt)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// Confirm asks message and accepts "yes" in any case.
func (p *LinePrompter) Confirm(message string) (bool, error) {
	answer, err := p.Ask(message)
	if err != nil {
		return false, err
	}

	return strings.EqualFold(answer, "yes"), nil
}

type surveyPrompter struct {
	stdio survey.AskOpt
}

func (p *surveyPrompter) Ask(message string) (string, error) {
	var answer string
	if err := survey.AskOne(&survey.Input{Message: message}, &answer, p.stdio); err != nil {
		return "", mapInterrupt(err)
	}

	return strings.TrimSpace(answer), nil
}

func (p *surveyPrompter) Select(message string, options []string) (string, error) {
	var idx int
	prompt := &survey.Select{Message: message, Options: options}
	if err := survey.AskOne(prompt, &idx, p.stdio); err != nil {
		return "", mapInterrupt(err)
	}

	return strconv.Itoa(idx + 1), nil
}

func (p *surveyPrompter) Confirm(message string) (bool, error) {
	var yes bool
	if err := survey.AskOne(&survey.Confirm{Message: message}, &yes, p.stdio); err != nil {
		return false, mapInterrupt(err)
	}

	return yes, nil
}

// mapInterrupt turns Ctrl+C inside a prompt into io.EOF so the session ends quietly.
func mapInterrupt(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return io.EOF
	}

	return err
}
