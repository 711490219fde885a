package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/avessier/flowcast"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	outputFile string
	series     string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the portfolio flows as JSON" }
func (*exportCmd) Usage() string {
	return `fcs export [-o <file>] [-series <name>]

  Exports every flow of the portfolio as JSON. By default each flow
  carries all its series. With -series, each flow is flattened to one
  value per period keyed by the period label ("Y1Q1", ...), ready for
  a spreadsheet.

Usage Examples:
# Full export to stdout.
$ fcs -sheet saved.json export

# Flat present-value table.
$ fcs -sheet saved.json export -series discounted -o pv.json
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Write to this file instead of stdout")
	f.StringVar(&c.series, "series", "", "Flatten each flow to this single series (nominal, discounted, gallons, ...)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	var out io.Writer = os.Stdout
	if c.outputFile != "" {
		file, err := os.Create(c.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	var doc any = p.AllFlows()
	if c.series != "" {
		sel, err := flowcast.ParseSeries(c.series)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		flat := make(map[string]map[string]float64, p.Len())
		for _, flow := range p.AllFlows() {
			flat[flow.Name()] = flow.Record(sel, p.Config())
		}
		doc = flat
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing export: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
