package flowcast

import (
	"fmt"
	"math"
	"strings"
)

// Shape identifies the growth curve a cash flow ramps up with. It is a
// closed set: unknown labels are rejected at parse time rather than
// dispatched dynamically.
type Shape int

const (
	// Linear ramps in a straight line from start to max over the
	// scale-up quarters.
	Linear Shape = iota
	// Sigmoid ramps along a logistic curve, normalized so the ramp
	// starts at exactly 0 and ends at exactly 1.
	Sigmoid
	// Single is a one-time payment: full amount in the delay quarter,
	// nothing before or after.
	Single
	// Step jumps to the full amount as soon as the delay elapses.
	Step
	// MultiStep changes only at year boundaries. It selects the
	// headcount construction path; as a curve it behaves like Step.
	MultiStep
)

// sigmoidK is the logistic steepness over a unit ramp. It places the
// raw curve at 5% of max when the ramp starts and 95% when it ends,
// before normalization.
var sigmoidK = 2 * math.Log(1/0.95-1)

func (s Shape) String() string {
	switch s {
	case Linear:
		return "linear"
	case Sigmoid:
		return "sigmoid"
	case Single:
		return "single"
	case Step:
		return "step"
	case MultiStep:
		return "multi-step"
	default:
		return "unknown"
	}
}

// ParseShape parses a sheet profile label into a Shape. It accepts the
// labels used in the source sheet ("Logistic", "Single Pmt.",
// "Continuous") as well as the canonical names.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return Linear, nil
	case "logistic", "sigmoid":
		return Sigmoid, nil
	case "single pmt.", "single":
		return Single, nil
	case "continuous", "step":
		return Step, nil
	case "multi-step", "multistep":
		return MultiStep, nil
	default:
		return 0, fmt.Errorf("%w: unknown profile type %q", ErrInvalidParameter, s)
	}
}

// Completion returns the completion fraction f(t) in [0,1] for period t
// of a ramp that waits delayQtrs periods and then scales up over
// scaleUpQtrs periods. Before the delay it is 0, at or after
// delay+scaleUp it is 1, and in between it interpolates according to
// the shape. Ramp periods count toward completion, so a 2-quarter ramp
// runs at 50% in its first quarter and reaches max in its second. A
// zero scale-up is an instantaneous jump at the delay.
//
// Single is the one exception to the plateau: it completes only in the
// delay period itself.
func (s Shape) Completion(t, delayQtrs, scaleUpQtrs int) float64 {
	if s == Single {
		if t == delayQtrs {
			return 1
		}
		return 0
	}
	if t < delayQtrs {
		return 0
	}
	if t >= delayQtrs+scaleUpQtrs {
		return 1
	}
	// 0 < p <= 1 on the ramp. scaleUpQtrs > 0 here, since a zero
	// scale-up was caught by the plateau test above.
	p := float64(t-delayQtrs+1) / float64(scaleUpQtrs)
	switch s {
	case Sigmoid:
		return normalizedLogistic(p)
	case Step, MultiStep:
		// already past the delay
		return 1
	default:
		return p
	}
}

// normalizedLogistic maps the unit ramp progress p through a logistic
// curve rescaled so that f(0)=0 and f(1)=1 exactly.
func normalizedLogistic(p float64) float64 {
	g := func(x float64) float64 { return 1 / (1 + math.Exp(sigmoidK*(x-0.5))) }
	g0, g1 := g(0), g(1)
	return (g(p) - g0) / (g1 - g0)
}
