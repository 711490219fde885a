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

// flowsCmd holds the flags for the 'flows' subcommand.
type flowsCmd struct {
	project string
}

func (*flowsCmd) Name() string     { return "flows" }
func (*flowsCmd) Synopsis() string { return "display every series of individual flows" }
func (*flowsCmd) Usage() string {
	return `fcs flows [-p <code>] [<name> ...]

  Displays every per-period series of each flow: nominal, discounted,
  and the volume and variable cost ones when the flow carries them.
  Without names, displays all flows; -p restricts to one project.
`
}

func (c *flowsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.project, "p", "", "Only flows of this project code")
}

func (c *flowsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	flows := p.AllFlows()
	if c.project != "" {
		flows = p.Flows(c.project)
		if len(flows) == 0 {
			fmt.Fprintf(os.Stderr, "Error: unknown project %q\n", c.project)
			return subcommands.ExitUsageError
		}
	}
	if f.NArg() > 0 {
		flows = filterByName(flows, f.Args())
		if len(flows) == 0 {
			fmt.Fprintf(os.Stderr, "Error: no flow matches %v\n", f.Args())
			return subcommands.ExitUsageError
		}
	}

	for _, flow := range flows {
		printMarkdown(renderer.FlowMarkdown(flow, p.Config()))
	}
	return subcommands.ExitSuccess
}

func filterByName(flows []*flowcast.Flow, names []string) []*flowcast.Flow {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}
	var kept []*flowcast.Flow
	for _, f := range flows {
		if wanted[f.Name()] {
			kept = append(kept, f)
		}
	}
	return kept
}
