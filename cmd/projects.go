package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/avessier/flowcast/renderer"
	"github.com/google/subcommands"
)

// projectsCmd holds the flags for the 'projects' subcommand.
type projectsCmd struct{}

func (*projectsCmd) Name() string     { return "projects" }
func (*projectsCmd) Synopsis() string { return "display per-project reports" }
func (*projectsCmd) Usage() string {
	return `fcs projects [<code> ...]

  Without arguments, lists the project codes of the portfolio.
  With project codes, displays a detailed report for each one.
`
}

func (c *projectsCmd) SetFlags(f *flag.FlagSet) {}

func (c *projectsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	codes := f.Args()
	if len(codes) == 0 {
		fmt.Println(strings.Join(p.ProjectCodes(), "\n"))
		return subcommands.ExitSuccess
	}

	for _, code := range codes {
		if len(p.Flows(code)) == 0 {
			fmt.Fprintf(os.Stderr, "Error: unknown project %q\n", code)
			return subcommands.ExitUsageError
		}
		printMarkdown(renderer.ProjectMarkdown(code, p, *currency))
	}
	return subcommands.ExitSuccess
}
