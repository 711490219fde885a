package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avessier/flowcast"
	"github.com/avessier/flowcast/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio NPV summary" }
func (*summaryCmd) Usage() string {
	return `fcs summary

  Displays the portfolio rollup: NPV, nominal total, digital gallons
  and variable cost per project, plus whole-portfolio totals.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	s, err := flowcast.NewSummary(p, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error summarizing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(s))
	return subcommands.ExitSuccess
}
