package flowcast

import "errors"

// Sentinel errors returned by the engine. Callers match them with
// errors.Is and decide whether to skip the offending row or abort.
var (
	// ErrInvalidParameter reports a malformed or out-of-range input,
	// like a negative scale-up or a discount rate at or below -100%.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInconsistentHorizon reports an attempt to combine series of
	// mismatched lengths.
	ErrInconsistentHorizon = errors.New("inconsistent horizon")

	// ErrEmptyInput reports an aggregation over zero flows without an
	// explicit horizon.
	ErrEmptyInput = errors.New("empty input")
)
