package cli

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/citysearch"
	"github.com/katalvlaran/citysearch/internal/query"
)

// Messages printed by the interactive session.
const (
	msgStart         = "Enter the starting town"
	msgEnd           = "Enter the ending town"
	msgInvalidCities = "Invalid cities. Please enter valid city names."
	msgMenu          = "Select a search method:"
	msgInvalidMethod = "Invalid method selection. Please enter a valid method number (1-5)."
	msgAgain         = "Do you want to search again? (yes/no)"
	msgSearchFailed  = "Search failed:"
)

// Session is the interactive query loop.
type Session struct {
	runner *query.Runner
	prompt Prompter
	out    io.Writer
}

// NewSession runs queries with runner, asking through p and reporting to out.
func NewSession(runner *query.Runner, p Prompter, out io.Writer) *Session {
	return &Session{runner: runner, prompt: p, out: out}
}

// Run loops until the user declines another search or input ends.
func (s *Session) Run() error {
	labels := make([]string, 0, len(citysearch.Strategies()))
	for _, st := range citysearch.Strategies() {
		labels = append(labels, st.Description())
	}

	for {
		from, err := s.prompt.Ask(msgStart)
		if err != nil {
			return endOfInput(err)
		}
		to, err := s.prompt.Ask(msgEnd)
		if err != nil {
			return endOfInput(err)
		}
		if !s.runner.Graph.HasCity(from) || !s.runner.Graph.HasCity(to) {
			fmt.Fprintln(s.out, msgInvalidCities)
			continue
		}

		choice, err := s.prompt.Select(msgMenu, labels)
		if err != nil {
			return endOfInput(err)
		}
		strategy, err := citysearch.ParseStrategy(choice)
		if err != nil {
			fmt.Fprintln(s.out, msgInvalidMethod)
			continue
		}

		rep, err := s.runner.Run(strategy, from, to)
		if err != nil {
			fmt.Fprintf(s.out, "%s %v\n", msgSearchFailed, err)
			continue
		}
		WriteReport(s.out, rep)

		again, err := s.prompt.Confirm(msgAgain)
		if err != nil {
			return endOfInput(err)
		}
		if !again {
			return nil
		}
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return errors.Wrap(err, "prompt")
}
