// Package cmd implements the fcs CLI to project and report portfolio
// cash flows.
package cmd

import (
	"flag"
	"fmt"

	"github.com/avessier/flowcast"
	"github.com/avessier/flowcast/smartsheet"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&projectsCmd{}, "reports")
	c.Register(&flowsCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var sheetFile = flag.String("sheet", "", "Path to a sheet saved as JSON. Takes precedence over -sheet-id.")
var sheetID = flag.String("sheet-id", "", "Smartsheet sheet id to fetch (requires SMARTSHEET_ACCESS_TOKEN)")
var years = flag.Int("years", 3, "Number of years in the model")
var periods = flag.Int("periods", 4, "Number of periods per year")
var currency = flag.String("currency", "USD", "Reporting currency for summaries")

// ModelConfig returns the model configuration from the global flags.
func ModelConfig() flowcast.Config {
	return flowcast.Config{YearsInModel: *years, PeriodsInYear: *periods}
}

// LoadPortfolio reads the assumptions sheet selected by the global
// flags and builds the portfolio from its included rows.
func LoadPortfolio() (*flowcast.Portfolio, error) {
	var sheet *smartsheet.Sheet
	var err error
	switch {
	case *sheetFile != "":
		sheet, err = smartsheet.Load(*sheetFile)
	case *sheetID != "":
		sheet, err = smartsheet.Fetch("", *sheetID)
	default:
		return nil, fmt.Errorf("no sheet selected: set -sheet or -sheet-id")
	}
	if err != nil {
		return nil, err
	}

	records, err := sheet.Records()
	if err != nil {
		return nil, err
	}
	return flowcast.BuildPortfolio(records, ModelConfig())
}
