package flowcast

import "fmt"

// FTEParameters are the assumptions a headcount flow is built from.
// Headcount changes only at year boundaries, so the granularity is one
// count per modelled year with a per-period fallback.
type FTEParameters struct {
	// Name is the descriptive label of the line item.
	Name string
	// ProjectCode groups the flow under a project in a portfolio.
	ProjectCode string
	// DiscountRate is the per-period rate used for present value.
	DiscountRate float64
	// FTEPerPeriod is the fallback headcount for years without an
	// explicit override. Nil means no fallback: every modelled year
	// must then carry an override. An explicit zero is a valid count.
	FTEPerPeriod *float64
	// FTEYears overrides the headcount per modelled year; a nil entry
	// falls back to FTEPerPeriod for that year.
	FTEYears []*float64
	// FTEPeriodCost is the cost of one FTE for one period.
	FTEPeriodCost float64
}

func (p FTEParameters) validate(cfg Config) error {
	if p.Name == "" {
		return fmt.Errorf("%w: flow name must not be empty", ErrInvalidParameter)
	}
	if p.FTEPerPeriod != nil && *p.FTEPerPeriod < 0 {
		return fmt.Errorf("%w: flow %q: FTE counts and cost must not be negative", ErrInvalidParameter, p.Name)
	}
	if p.FTEPeriodCost < 0 {
		return fmt.Errorf("%w: flow %q: FTE counts and cost must not be negative", ErrInvalidParameter, p.Name)
	}
	if p.DiscountRate <= -1 {
		return fmt.Errorf("%w: flow %q: discount rate must be greater than -1, got %g", ErrInvalidParameter, p.Name, p.DiscountRate)
	}
	for i, fte := range p.FTEYears {
		if fte != nil && *fte < 0 {
			return fmt.Errorf("%w: flow %q: FTE count for year %d must not be negative", ErrInvalidParameter, p.Name, i+1)
		}
	}
	// Every modelled year needs a headcount: its override or the
	// fallback. A nil entry in FTEYears is a missing cell, not zero.
	for year := 0; year < cfg.YearsInModel; year++ {
		if year < len(p.FTEYears) && p.FTEYears[year] != nil {
			continue
		}
		if p.FTEPerPeriod == nil {
			return fmt.Errorf("%w: flow %q: no FTE count for year %d and no per-period fallback", ErrInvalidParameter, p.Name, year+1)
		}
	}
	return nil
}

// headcount resolves the FTE count effective in a period: the year's
// override when present, the per-period fallback otherwise. Years
// beyond the overrides always use the fallback.
func (p FTEParameters) headcount(period int, cfg Config) float64 {
	year := cfg.Year(period)
	if year < len(p.FTEYears) && p.FTEYears[year] != nil {
		return *p.FTEYears[year]
	}
	if p.FTEPerPeriod == nil {
		return 0
	}
	return *p.FTEPerPeriod
}

// NewFTECashFlow builds a headcount Flow from its parameters. The
// resulting flow is always a cost: every period's amount is the
// negated headcount times the per-period FTE cost. It carries no
// volume or variable-cost series.
func NewFTECashFlow(p FTEParameters, cfg Config) (*Flow, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := p.validate(cfg); err != nil {
		return nil, err
	}

	nominal := make([]float64, cfg.Horizon())
	for t := range nominal {
		nominal[t] = -p.headcount(t, cfg) * p.FTEPeriodCost
	}
	discounted, err := Discount(nominal, p.DiscountRate)
	if err != nil {
		return nil, err
	}

	return &Flow{
		name:        p.Name,
		projectCode: p.ProjectCode,
		isCost:      true,
		nominal:     nominal,
		discounted:  discounted,
	}, nil
}
