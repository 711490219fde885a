package flowcast

import "fmt"

// ProjectSummary aggregates one project's flows.
type ProjectSummary struct {
	Code  string
	Flows int
	// NPV is the sum of the discounted amount series of all flows.
	NPV Money
	// Nominal is the undiscounted total over the horizon.
	Nominal Money
	// DigitalGallons is the nominal volume total over the horizon.
	DigitalGallons float64
	// VariableCostNPV is the discounted variable cost total.
	VariableCostNPV Money
}

// Summary is the portfolio-level rollup handed to the presentation
// layer: one line per project plus whole-portfolio totals.
type Summary struct {
	Config            Config
	ReportingCurrency string
	Projects          []ProjectSummary
	// Discounted is the combined present-value series of the whole
	// portfolio, one value per period.
	Discounted []float64
	// Totals across all projects.
	NPV             Money
	DigitalGallons  float64
	VariableCostNPV Money
}

// NewSummary computes the portfolio rollup in a reporting currency.
// Projects appear in code order.
func NewSummary(p *Portfolio, reportingCurrency string) (*Summary, error) {
	if reportingCurrency == "" {
		return nil, fmt.Errorf("%w: reporting currency is not set", ErrInvalidParameter)
	}
	summary := &Summary{
		Config:            p.Config(),
		ReportingCurrency: reportingCurrency,
	}

	for _, code := range p.ProjectCodes() {
		flows := p.Flows(code)

		nominal, err := p.ProjectSeries(code, Nominal)
		if err != nil {
			return nil, fmt.Errorf("summarizing project %q: %w", code, err)
		}
		gallons, err := p.ProjectSeries(code, Gallons)
		if err != nil {
			return nil, fmt.Errorf("summarizing project %q: %w", code, err)
		}
		vc, err := p.ProjectSeries(code, DiscountedVariableCost)
		if err != nil {
			return nil, fmt.Errorf("summarizing project %q: %w", code, err)
		}

		ps := ProjectSummary{
			Code:            code,
			Flows:           len(flows),
			NPV:             M(p.ProjectNPV(code), reportingCurrency),
			Nominal:         M(NPV(nominal), reportingCurrency),
			DigitalGallons:  NPV(gallons),
			VariableCostNPV: M(NPV(vc), reportingCurrency),
		}
		summary.Projects = append(summary.Projects, ps)

		summary.NPV = summary.NPV.Add(ps.NPV)
		summary.DigitalGallons += ps.DigitalGallons
		summary.VariableCostNPV = summary.VariableCostNPV.Add(ps.VariableCostNPV)
	}

	discounted, err := p.Series(Discounted)
	if err != nil {
		return nil, err
	}
	summary.Discounted = discounted

	return summary, nil
}
