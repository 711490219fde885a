package flowcast

import "fmt"

// CombineFlows sums the selected series element-wise across a
// collection of flows. The horizon is explicit so that a group with no
// flows still yields a correctly-sized all-zero series; it must match
// the length of every combined series.
//
// Headcount flows contribute nothing to the volume and variable-cost
// selectors: their empty series are treated as all-zero.
func CombineFlows(flows []*Flow, sel Series, horizon int) ([]float64, error) {
	if horizon <= 0 {
		return nil, fmt.Errorf("%w: combining flows requires a positive horizon, got %d", ErrEmptyInput, horizon)
	}
	combined := make([]float64, horizon)
	for _, f := range flows {
		if f.Horizon() != horizon {
			return nil, fmt.Errorf("%w: flow %q spans %d periods, want %d", ErrInconsistentHorizon, f.Name(), f.Horizon(), horizon)
		}
		series := f.Series(sel)
		if len(series) == 0 {
			continue
		}
		for t, v := range series {
			combined[t] += v
		}
	}
	return combined, nil
}
