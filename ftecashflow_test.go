package flowcast

import (
	"errors"
	"testing"
)

func TestNewFTECashFlow_PerYearOverrides(t *testing.T) {
	flow, err := NewFTECashFlow(FTEParameters{
		Name:          "engineering team",
		ProjectCode:   "P1",
		FTEYears:      []*float64{fte(2), fte(3), fte(4)},
		FTEPeriodCost: 100,
	}, qtrly())
	if err != nil {
		t.Fatalf("NewFTECashFlow() error = %v", err)
	}
	want := []float64{
		-200, -200, -200, -200,
		-300, -300, -300, -300,
		-400, -400, -400, -400,
	}
	seriesEqual(t, flow.Series(Nominal), want)
	if !flow.IsCost() {
		t.Error("IsCost() = false, headcount flows are always costs")
	}
}

func TestNewFTECashFlow_FallbackPerPeriod(t *testing.T) {
	flow, err := NewFTECashFlow(FTEParameters{
		Name:          "support staff",
		FTEPerPeriod:  fte(5),
		FTEYears:      []*float64{nil, fte(6)},
		FTEPeriodCost: 10,
	}, qtrly())
	if err != nil {
		t.Fatalf("NewFTECashFlow() error = %v", err)
	}
	nominal := flow.Series(Nominal)
	// year 1 and 3 fall back to the per-period count, year 2 overrides
	for _, x := range []int{0, 3, 8, 11} {
		if !eq(nominal[x], -50) {
			t.Errorf("nominal[%d] = %v, want -50 from fallback", x, nominal[x])
		}
	}
	for _, x := range []int{4, 7} {
		if !eq(nominal[x], -60) {
			t.Errorf("nominal[%d] = %v, want -60 from year 2 override", x, nominal[x])
		}
	}
}

func TestNewFTECashFlow_NoGallonsSeries(t *testing.T) {
	flow, err := NewFTECashFlow(FTEParameters{
		Name:          "ops",
		FTEPerPeriod:  fte(1),
		FTEPeriodCost: 100,
	}, qtrly())
	if err != nil {
		t.Fatalf("NewFTECashFlow() error = %v", err)
	}
	if flow.HasGallons() {
		t.Error("HasGallons() = true, headcount flows carry no volume")
	}
	for _, sel := range []Series{Gallons, DiscountedGallons, VariableCost, DiscountedVariableCost} {
		if got := flow.Series(sel); len(got) != 0 {
			t.Errorf("Series(%v) length = %d, want 0", sel, len(got))
		}
	}
}

func TestNewFTECashFlow_Discounting(t *testing.T) {
	flow, err := NewFTECashFlow(FTEParameters{
		Name:          "team",
		FTEPerPeriod:  fte(2),
		FTEPeriodCost: 100,
		DiscountRate:  0.05,
	}, qtrly())
	if err != nil {
		t.Fatalf("NewFTECashFlow() error = %v", err)
	}
	nominal, discounted := flow.Series(Nominal), flow.Series(Discounted)
	if !eq(discounted[0], nominal[0]) {
		t.Errorf("discounted[0] = %v, want %v", discounted[0], nominal[0])
	}
	if !eq(discounted[1], -200/1.05) {
		t.Errorf("discounted[1] = %v, want %v", discounted[1], -200/1.05)
	}
}

func TestNewFTECashFlow_ExplicitZeroFallback(t *testing.T) {
	// an explicit zero count is a valid assumption, unlike a missing one
	flow, err := NewFTECashFlow(FTEParameters{
		Name:          "paused team",
		FTEPerPeriod:  fte(0),
		FTEYears:      []*float64{nil, fte(3)},
		FTEPeriodCost: 100,
	}, qtrly())
	if err != nil {
		t.Fatalf("NewFTECashFlow() error = %v", err)
	}
	nominal := flow.Series(Nominal)
	if !eq(nominal[0], 0) {
		t.Errorf("nominal[0] = %v, want 0 from the explicit zero fallback", nominal[0])
	}
	if !eq(nominal[4], -300) {
		t.Errorf("nominal[4] = %v, want -300 from the year 2 override", nominal[4])
	}
}

func TestNewFTECashFlow_InvalidParameters(t *testing.T) {
	cfg := qtrly()
	testCases := []struct {
		name string
		p    FTEParameters
	}{
		{"empty name", FTEParameters{FTEPerPeriod: fte(1), FTEPeriodCost: 1}},
		{"negative cost", FTEParameters{Name: "x", FTEPerPeriod: fte(1), FTEPeriodCost: -1}},
		{"negative fallback", FTEParameters{Name: "x", FTEPerPeriod: fte(-1), FTEPeriodCost: 1}},
		{"negative year count", FTEParameters{Name: "x", FTEYears: []*float64{fte(-2)}, FTEPeriodCost: 1}},
		{"rate at -100%", FTEParameters{Name: "x", FTEPerPeriod: fte(1), FTEPeriodCost: 1, DiscountRate: -1}},
		{"no counts at all", FTEParameters{Name: "x", FTEPeriodCost: 1}},
		{"all year cells empty", FTEParameters{Name: "x", FTEYears: []*float64{nil, nil, nil}, FTEPeriodCost: 1}},
		{"gap year without fallback", FTEParameters{Name: "x", FTEYears: []*float64{fte(2), nil, fte(4)}, FTEPeriodCost: 1}},
		{"short overrides without fallback", FTEParameters{Name: "x", FTEYears: []*float64{fte(2), fte(3)}, FTEPeriodCost: 1}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewFTECashFlow(tc.p, cfg); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("NewFTECashFlow() error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}
