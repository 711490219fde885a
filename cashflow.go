package flowcast

import "fmt"

// FlowParameters are the assumptions an amount-ramp flow is built from.
// All magnitudes are unitless; DiscountRate is per period.
type FlowParameters struct {
	// Name is the descriptive label of the line item.
	Name string
	// ProjectCode groups the flow under a project in a portfolio.
	ProjectCode string
	// IsCost negates the monetary series so costs reduce NPV.
	IsCost bool
	// StartAmt is the per-period amount before the ramp begins.
	StartAmt float64
	// MaxAmt is the peak per-period amount the ramp scales up to.
	MaxAmt float64
	// DelayQtrs is the number of periods before the ramp begins.
	DelayQtrs int
	// ScaleUpQtrs is the number of periods the ramp runs over. Zero
	// means an immediate jump at the delay.
	ScaleUpQtrs int
	// Function selects the growth curve shape.
	Function Shape
	// DiscountRate is the per-period rate used for present value.
	DiscountRate float64
	// DigitalGallons is the peak per-period volume, ramped with the
	// same delay, scale-up and shape as the amount.
	DigitalGallons float64
	// VCPerDG is the variable cost per digital gallon.
	VCPerDG float64
}

func (p FlowParameters) validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: flow name must not be empty", ErrInvalidParameter)
	}
	if p.DelayQtrs < 0 {
		return fmt.Errorf("%w: flow %q: delay must not be negative, got %d", ErrInvalidParameter, p.Name, p.DelayQtrs)
	}
	if p.ScaleUpQtrs < 0 {
		return fmt.Errorf("%w: flow %q: scale-up must not be negative, got %d", ErrInvalidParameter, p.Name, p.ScaleUpQtrs)
	}
	if p.StartAmt < 0 || p.MaxAmt < 0 {
		return fmt.Errorf("%w: flow %q: amounts must not be negative", ErrInvalidParameter, p.Name)
	}
	if p.DigitalGallons < 0 {
		return fmt.Errorf("%w: flow %q: digital gallons must not be negative", ErrInvalidParameter, p.Name)
	}
	if p.VCPerDG < 0 {
		return fmt.Errorf("%w: flow %q: variable cost per gallon must not be negative", ErrInvalidParameter, p.Name)
	}
	if p.DiscountRate <= -1 {
		return fmt.Errorf("%w: flow %q: discount rate must be greater than -1, got %g", ErrInvalidParameter, p.Name, p.DiscountRate)
	}
	if p.Function < Linear || p.Function > MultiStep {
		return fmt.Errorf("%w: flow %q: unknown growth curve shape %d", ErrInvalidParameter, p.Name, p.Function)
	}
	return nil
}

// ramp builds the per-period series for a peak magnitude following the
// parameters' shape and timing. Units are magnitude per period.
func (p FlowParameters) ramp(start, max float64, n int) []float64 {
	series := make([]float64, n)
	for t := range series {
		f := p.Function.Completion(t, p.DelayQtrs, p.ScaleUpQtrs)
		series[t] = start + (max-start)*f
	}
	return series
}

// NewCashFlow builds an amount-ramp Flow from its parameters. It is
// deterministic and performs no I/O; for well-formed parameters it
// never fails.
//
// The monetary series are negated when IsCost is set, the volume series
// never are, and the variable cost is always expressed as a cost
// (non-positive). Downstream aggregation depends on this asymmetry.
func NewCashFlow(p FlowParameters, cfg Config) (*Flow, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	n := cfg.Horizon()

	nominal := p.ramp(p.StartAmt, p.MaxAmt, n)
	if p.IsCost {
		for t := range nominal {
			nominal[t] = -nominal[t]
		}
	}
	discounted, err := Discount(nominal, p.DiscountRate)
	if err != nil {
		return nil, err
	}

	// Volume moves with the amount but carries no sign convention.
	gallons := p.ramp(0, p.DigitalGallons, n)
	discountedGallons, err := Discount(gallons, p.DiscountRate)
	if err != nil {
		return nil, err
	}

	return &Flow{
		name:                   p.Name,
		projectCode:            p.ProjectCode,
		isCost:                 p.IsCost,
		nominal:                nominal,
		discounted:             discounted,
		gallons:                gallons,
		discountedGallons:      discountedGallons,
		variableCost:           variableCost(gallons, p.VCPerDG),
		discountedVariableCost: variableCost(discountedGallons, p.VCPerDG),
	}, nil
}

// variableCost derives the cost of a volume series at a unit rate. It
// is always expressed as a cost, regardless of the flow's IsCost flag.
func variableCost(volume []float64, vcPerDG float64) []float64 {
	cost := make([]float64, len(volume))
	for t, v := range volume {
		cost[t] = -v * vcPerDG
	}
	return cost
}
