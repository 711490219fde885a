// Package agent implements the interactive assistant behind
// `fcs assist`: a coordinator chat that consults a team of experts to
// answer questions about the project portfolio.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Assistant runs the chat session: a REPL over the coordinator, which
// consults the team as tools.
type Assistant struct {
	w           io.Writer
	in          *bufio.Scanner
	coordinator *Expert
	team        []*Expert
}

// New creates an Assistant over a team of experts. It takes an
// io.Writer for the assistant's output (e.g., os.Stdout) and an
// io.Reader for user input (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, team ...*Expert) *Assistant {
	return &Assistant{
		w:           w,
		in:          bufio.NewScanner(r),
		team:        team,
		coordinator: newCoordinator(team),
	}
}

// Start opens every chat session: the team first, then the coordinator
// that consults it.
func (a *Assistant) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.team {
		if err := e.Start(ctx, client); err != nil {
			return fmt.Errorf("starting expert %s: %w", e.Name, err)
		}
	}
	return a.coordinator.Start(ctx, client)
}

// Run starts the interactive REPL session. Initial prompts are played
// before reading from the user.
func (a *Assistant) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.coordinator.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to fcs planning assist. Ask about your portfolio; type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, "assist> ")

		var input string
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			fmt.Fprintln(a.w, input)
		} else {
			if !a.in.Scan() {
				// EOF is a clean exit on Ctrl+D
				return a.in.Err()
			}
			input = a.in.Text()
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		answer, err := a.coordinator.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
