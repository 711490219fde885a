package flowcast

import (
	"fmt"
	"slices"
	"strings"
)

// Series names one of the per-period sequences a Flow carries.
type Series int

const (
	// Nominal is the undiscounted monetary amount per period.
	Nominal Series = iota
	// Discounted is the present-value monetary amount per period.
	Discounted
	// Gallons is the undiscounted digital gallons volume per period.
	Gallons
	// DiscountedGallons is the present-value volume per period.
	DiscountedGallons
	// VariableCost is the undiscounted variable cost tied to volume.
	VariableCost
	// DiscountedVariableCost is the present-value variable cost.
	DiscountedVariableCost
)

func (s Series) String() string {
	switch s {
	case Nominal:
		return "nominal"
	case Discounted:
		return "discounted"
	case Gallons:
		return "gallons"
	case DiscountedGallons:
		return "discounted-gallons"
	case VariableCost:
		return "variable-cost"
	case DiscountedVariableCost:
		return "discounted-variable-cost"
	default:
		return "unknown"
	}
}

// ParseSeries parses a series name as used on the command line.
func ParseSeries(s string) (Series, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nominal":
		return Nominal, nil
	case "discounted":
		return Discounted, nil
	case "gallons":
		return Gallons, nil
	case "discounted-gallons":
		return DiscountedGallons, nil
	case "variable-cost":
		return VariableCost, nil
	case "discounted-variable-cost":
		return DiscountedVariableCost, nil
	default:
		return 0, fmt.Errorf("%w: unknown series %q", ErrInvalidParameter, s)
	}
}

// Flow is one projected line item: a set of per-period series derived
// once from ramp assumptions. It is immutable after construction, so a
// portfolio can hand it around without copying or locking.
//
// Amount-ramp flows carry all six series. Headcount flows carry only
// the monetary ones; their volume and variable-cost series are empty.
type Flow struct {
	name        string
	projectCode string
	isCost      bool

	nominal                []float64
	discounted             []float64
	gallons                []float64
	discountedGallons      []float64
	variableCost           []float64
	discountedVariableCost []float64
}

// Name returns the descriptive name of the flow.
func (f *Flow) Name() string { return f.name }

// ProjectCode returns the project this flow belongs to.
func (f *Flow) ProjectCode() string { return f.projectCode }

// IsCost reports whether the monetary series carry a negated sign.
func (f *Flow) IsCost() bool { return f.isCost }

// HasGallons reports whether the flow carries volume series.
func (f *Flow) HasGallons() bool { return len(f.gallons) > 0 }

// Horizon returns the number of periods in the flow.
func (f *Flow) Horizon() int { return len(f.nominal) }

// Series returns a copy of the selected series. Headcount flows return
// an empty slice for the volume and variable-cost selectors.
func (f *Flow) Series(sel Series) []float64 {
	switch sel {
	case Nominal:
		return slices.Clone(f.nominal)
	case Discounted:
		return slices.Clone(f.discounted)
	case Gallons:
		return slices.Clone(f.gallons)
	case DiscountedGallons:
		return slices.Clone(f.discountedGallons)
	case VariableCost:
		return slices.Clone(f.variableCost)
	case DiscountedVariableCost:
		return slices.Clone(f.discountedVariableCost)
	default:
		return nil
	}
}

// NPV returns the sum of the discounted amount series.
func (f *Flow) NPV() float64 { return NPV(f.discounted) }

// Record flattens the selected series into one key per period, keyed by
// the period label ("Y1Q1", ...). Consumers can serialize it without
// any other engine type. Iterate it in cfg.Labels() order.
func (f *Flow) Record(sel Series, cfg Config) map[string]float64 {
	record := make(map[string]float64, len(f.nominal))
	for t, v := range f.Series(sel) {
		record[cfg.Label(t)] = v
	}
	return record
}

// MarshalJSON serializes the flow with a stable field order: identity
// first, then the monetary series, then the volume ones when present.
func (f *Flow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", f.name)
	w.Optional("projectCode", f.projectCode)
	w.Append("isCost", f.isCost)
	w.Append("nominal", f.nominal)
	w.Append("discounted", f.discounted)
	if f.HasGallons() {
		w.Append("gallons", f.gallons)
		w.Append("discountedGallons", f.discountedGallons)
		w.Append("variableCost", f.variableCost)
		w.Append("discountedVariableCost", f.discountedVariableCost)
	}
	return w.MarshalJSON()
}
