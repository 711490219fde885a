package flowcast

import (
	"errors"
	"fmt"
)

// This file turns external sheet rows into flows. The sheet itself is
// fetched and parsed by the smartsheet subpackage; here we only decide
// which rows enter the model and which constructor builds them.

// RowRecord is the flat, already-parsed view of one sheet row. Optional
// numeric cells are pointers so that "missing" stays distinct from
// zero: a missing required cell is an error, never a silent default.
type RowRecord struct {
	// Number is the 1-based sheet row, used in error messages only.
	Number int

	// Include marks the row for inclusion in the model.
	Include bool
	// ProjectCode groups the resulting flow under a project.
	ProjectCode string
	// Name is the descriptive label of the line item.
	Name string
	// Function is the growth profile label. The "multi-step" label
	// selects the headcount path; every other label an amount ramp.
	Function string
	// IsCost marks the row as a cost rather than a benefit.
	IsCost bool

	// AnnualDiscountRate is the yearly rate from the sheet; it is
	// divided by the periods per year before reaching the engine.
	AnnualDiscountRate *float64
	StartAmt           *float64
	MaxAmt             *float64
	DelayQtrs          *int
	ScaleUpQtrs        *int
	DigitalGallons     *float64
	VCPerDG            *float64

	// Headcount cells, used when Function is "multi-step".
	FTEPerPeriod  *float64
	FTEYears      []*float64
	FTEPeriodCost *float64
}

// included applies the inclusion predicate: the row is marked for the
// model and names both a project and a growth profile.
func (r RowRecord) included() bool {
	return r.Include && r.ProjectCode != "" && r.Function != ""
}

// required unwraps an optional cell, failing when it is absent.
func required(v *float64, row int, cell string) (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: row %d: missing %s", ErrInvalidParameter, row, cell)
	}
	return *v, nil
}

func requiredInt(v *int, row int, cell string) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: row %d: missing %s", ErrInvalidParameter, row, cell)
	}
	return *v, nil
}

// orZero unwraps an optional cell with a documented zero default.
func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Flow builds the flow a row describes, dispatching on the growth
// profile label. The caller is expected to have applied the inclusion
// predicate already; see BuildPortfolio.
func (r RowRecord) Flow(cfg Config) (*Flow, error) {
	shape, err := ParseShape(r.Function)
	if err != nil {
		return nil, fmt.Errorf("row %d: %w", r.Number, err)
	}
	annual, err := required(r.AnnualDiscountRate, r.Number, "discount rate")
	if err != nil {
		return nil, err
	}
	// The sheet carries annual rates; the engine wants per-period.
	rate := annual / float64(cfg.PeriodsInYear)

	if shape == MultiStep {
		cost, err := required(r.FTEPeriodCost, r.Number, "FTE period cost")
		if err != nil {
			return nil, err
		}
		flow, err := NewFTECashFlow(FTEParameters{
			Name:          r.Name,
			ProjectCode:   r.ProjectCode,
			DiscountRate:  rate,
			FTEPerPeriod:  r.FTEPerPeriod,
			FTEYears:      r.FTEYears,
			FTEPeriodCost: cost,
		}, cfg)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r.Number, err)
		}
		return flow, nil
	}

	maxAmt, err := required(r.MaxAmt, r.Number, "max amount")
	if err != nil {
		return nil, err
	}
	delay, err := requiredInt(r.DelayQtrs, r.Number, "delay quarters")
	if err != nil {
		return nil, err
	}
	scaleUp, err := requiredInt(r.ScaleUpQtrs, r.Number, "scale-up quarters")
	if err != nil {
		return nil, err
	}
	flow, err := NewCashFlow(FlowParameters{
		Name:           r.Name,
		ProjectCode:    r.ProjectCode,
		IsCost:         r.IsCost,
		StartAmt:       orZero(r.StartAmt),
		MaxAmt:         maxAmt,
		DelayQtrs:      delay,
		ScaleUpQtrs:    scaleUp,
		Function:       shape,
		DiscountRate:   rate,
		DigitalGallons: orZero(r.DigitalGallons),
		VCPerDG:        orZero(r.VCPerDG),
	}, cfg)
	if err != nil {
		return nil, fmt.Errorf("row %d: %w", r.Number, err)
	}
	return flow, nil
}

// BuildPortfolio constructs one flow per included row and indexes them
// by project code. Rows failing the inclusion predicate are silently
// skipped; an included row that cannot be built surfaces its error.
func BuildPortfolio(rows []RowRecord, cfg Config) (*Portfolio, error) {
	portfolio, err := NewPortfolio(cfg)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if !row.included() {
			continue
		}
		flow, err := row.Flow(cfg)
		if err != nil {
			return nil, err
		}
		if err := portfolio.Add(flow); err != nil {
			return nil, err
		}
	}
	return portfolio, nil
}

// IsInvalidRow reports whether err is a row-level parameter error that
// a caller may choose to skip rather than abort on.
func IsInvalidRow(err error) bool { return errors.Is(err, ErrInvalidParameter) }
