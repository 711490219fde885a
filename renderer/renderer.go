// Package renderer turns flowcast reports into markdown documents,
// ready for the terminal or for publication.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/avessier/flowcast"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the portfolio rollup: one line per project
// and whole-portfolio totals, plus the combined present-value profile
// per period.
func SummaryMarkdown(s *flowcast.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Summary")
	doc.PlainText(fmt.Sprintf("%d projects over %d years (%d periods), in %s.",
		len(s.Projects), s.Config.YearsInModel, s.Config.Horizon(), s.ReportingCurrency))

	rows := make([][]string, 0, len(s.Projects)+1)
	for _, p := range s.Projects {
		rows = append(rows, []string{
			p.Code,
			fmt.Sprintf("%d", p.Flows),
			p.NPV.String(),
			p.Nominal.String(),
			Gallons(p.DigitalGallons),
			p.VariableCostNPV.String(),
		})
	}
	rows = append(rows, []string{
		"Total",
		fmt.Sprintf("%d", totalFlows(s)),
		s.NPV.String(),
		"",
		Gallons(s.DigitalGallons),
		s.VariableCostNPV.String(),
	})
	doc.H2("Projects")
	doc.Table(md.TableSet{
		Header: []string{"Project", "Flows", "NPV", "Nominal", "Digital Gallons", "Variable Cost (PV)"},
		Rows:   rows,
	})

	doc.H2("Present Value per Period")
	doc.Table(seriesTable(s.Config, map[string][]float64{"PV": s.Discounted}, []string{"PV"}))

	return doc.String()
}

// ProjectMarkdown renders one project: a line per flow with its NPV,
// then every flow's discounted series per period.
func ProjectMarkdown(code string, p *flowcast.Portfolio, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	cfg := p.Config()
	flows := p.Flows(code)

	doc.H1(fmt.Sprintf("Project %s", code))

	rows := make([][]string, 0, len(flows))
	series := make(map[string][]float64, len(flows))
	order := make([]string, 0, len(flows))
	for _, f := range flows {
		kind := "ramp"
		if !f.HasGallons() {
			kind = "headcount"
		}
		rows = append(rows, []string{
			f.Name(),
			kind,
			costOrBenefit(f),
			flowcast.M(f.NPV(), currency).String(),
		})
		series[f.Name()] = f.Series(flowcast.Discounted)
		order = append(order, f.Name())
	}
	doc.H2("Flows")
	doc.Table(md.TableSet{
		Header: []string{"Flow", "Kind", "Sign", "NPV"},
		Rows:   rows,
	})

	doc.H2("Present Value per Period")
	doc.Table(seriesTable(cfg, series, order))

	return doc.String()
}

// FlowMarkdown renders every series of a single flow per period.
func FlowMarkdown(f *flowcast.Flow, cfg flowcast.Config) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Flow %s", f.Name()))
	doc.PlainText(fmt.Sprintf("Project %s, %s.", f.ProjectCode(), costOrBenefit(f)))

	selectors := []flowcast.Series{flowcast.Nominal, flowcast.Discounted}
	if f.HasGallons() {
		selectors = append(selectors,
			flowcast.Gallons, flowcast.DiscountedGallons,
			flowcast.VariableCost, flowcast.DiscountedVariableCost)
	}
	series := make(map[string][]float64, len(selectors))
	order := make([]string, 0, len(selectors))
	for _, sel := range selectors {
		series[sel.String()] = f.Series(sel)
		order = append(order, sel.String())
	}
	doc.Table(seriesTable(cfg, series, order))

	return doc.String()
}

func costOrBenefit(f *flowcast.Flow) string {
	if f.IsCost() {
		return "cost"
	}
	return "benefit"
}

func totalFlows(s *flowcast.Summary) int {
	var n int
	for _, p := range s.Projects {
		n += p.Flows
	}
	return n
}
