package flowcast

import (
	"fmt"
	"math"
)

// Discount converts a nominal per-period series into a present-value
// series under a per-period discount rate. Period 0 is the present, so
// it is never discounted; period t is divided by (1+rate)^t. A zero
// rate is the identity.
func Discount(series []float64, rate float64) ([]float64, error) {
	if rate <= -1 {
		return nil, fmt.Errorf("%w: discount rate must be greater than -1, got %g", ErrInvalidParameter, rate)
	}
	discounted := make([]float64, len(series))
	for t, v := range series {
		discounted[t] = v / math.Pow(1+rate, float64(t))
	}
	return discounted, nil
}

// NPV sums a discounted series across all periods.
func NPV(series []float64) float64 {
	var total float64
	for _, v := range series {
		total += v
	}
	return total
}
