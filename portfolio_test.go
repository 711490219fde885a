package flowcast

import (
	"errors"
	"reflect"
	"testing"
)

func TestPortfolio_GroupsAndSorts(t *testing.T) {
	cfg := qtrly()
	p, err := NewPortfolio(cfg)
	if err != nil {
		t.Fatalf("NewPortfolio() error = %v", err)
	}
	mk := func(name, code string) *Flow {
		flow, err := NewCashFlow(FlowParameters{
			Name: name, ProjectCode: code, MaxAmt: 10, ScaleUpQtrs: 2, Function: Linear,
		}, cfg)
		if err != nil {
			t.Fatalf("NewCashFlow(%q) error = %v", name, err)
		}
		return flow
	}
	if err := p.Add(mk("z1", "ZULU"), mk("a1", "ALFA"), mk("z2", "ZULU"), mk("m1", "MIKE")); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	want := []string{"ALFA", "MIKE", "ZULU"}
	if got := p.ProjectCodes(); !reflect.DeepEqual(got, want) {
		t.Errorf("ProjectCodes() = %v, want %v", got, want)
	}
	// insertion order within a project is preserved
	zulu := p.Flows("ZULU")
	if len(zulu) != 2 || zulu[0].Name() != "z1" || zulu[1].Name() != "z2" {
		t.Errorf("Flows(ZULU) = %v, want [z1 z2]", zulu)
	}
	if p.Len() != 4 {
		t.Errorf("Len() = %d, want 4", p.Len())
	}
}

func TestPortfolio_AddRejectsMismatchedHorizon(t *testing.T) {
	p, err := NewPortfolio(qtrly())
	if err != nil {
		t.Fatalf("NewPortfolio() error = %v", err)
	}
	short, err := NewCashFlow(FlowParameters{
		Name: "short", ProjectCode: "P1", MaxAmt: 10, ScaleUpQtrs: 2, Function: Linear,
	}, Config{YearsInModel: 1, PeriodsInYear: 4})
	if err != nil {
		t.Fatalf("NewCashFlow() error = %v", err)
	}
	if err := p.Add(short); !errors.Is(err, ErrInconsistentHorizon) {
		t.Errorf("Add() error = %v, want ErrInconsistentHorizon", err)
	}
}

func TestPortfolio_NPVAdds(t *testing.T) {
	cfg := qtrly()
	p, _ := NewPortfolio(cfg)
	a := testFlow(t, "a", 100, cfg)
	b := testFlow(t, "b", 40, cfg)
	if err := p.Add(a, b); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	want := a.NPV() + b.NPV()
	if got := p.ProjectNPV("P1"); !eq(got, want) {
		t.Errorf("ProjectNPV() = %v, want %v", got, want)
	}
	if got := p.NPV(); !eq(got, want) {
		t.Errorf("NPV() = %v, want %v", got, want)
	}
	// unknown project rolls up to zero
	if got := p.ProjectNPV("NOPE"); got != 0 {
		t.Errorf("ProjectNPV(NOPE) = %v, want 0", got)
	}
}

func TestPortfolio_NPVSumsInCodeOrder(t *testing.T) {
	cfg := qtrly()
	p, _ := NewPortfolio(cfg)
	for i, code := range []string{"DELTA", "BRAVO", "ECHO", "ALFA", "CHARLIE", "FOX", "GOLF", "HOTEL"} {
		flow, err := NewCashFlow(FlowParameters{
			Name:         code,
			ProjectCode:  code,
			MaxAmt:       10 + 3.7*float64(i),
			ScaleUpQtrs:  3,
			Function:     Sigmoid,
			DiscountRate: 0.031,
		}, cfg)
		if err != nil {
			t.Fatalf("NewCashFlow(%q) error = %v", code, err)
		}
		if err := p.Add(flow); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	var want float64
	for _, code := range p.ProjectCodes() {
		want += p.ProjectNPV(code)
	}
	// bitwise equality: the sum must follow code order, not map order
	for i := 0; i < 10; i++ {
		if got := p.NPV(); got != want {
			t.Fatalf("NPV() = %v on call %d, want %v", got, i, want)
		}
	}
}

func TestNewSummary(t *testing.T) {
	cfg := qtrly()
	p, _ := NewPortfolio(cfg)
	if err := p.Add(testFlow(t, "a", 100, cfg), testFlow(t, "b", 40, cfg)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	staff, err := NewFTECashFlow(FTEParameters{
		Name: "staff", ProjectCode: "P2", FTEPerPeriod: fte(1), FTEPeriodCost: 100,
	}, cfg)
	if err != nil {
		t.Fatalf("NewFTECashFlow() error = %v", err)
	}
	if err := p.Add(staff); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	summary, err := NewSummary(p, "USD")
	if err != nil {
		t.Fatalf("NewSummary() error = %v", err)
	}
	if len(summary.Projects) != 2 {
		t.Fatalf("len(Projects) = %d, want 2", len(summary.Projects))
	}
	if summary.Projects[0].Code != "P1" || summary.Projects[1].Code != "P2" {
		t.Errorf("project order = %q, %q, want P1, P2", summary.Projects[0].Code, summary.Projects[1].Code)
	}
	if summary.Projects[1].DigitalGallons != 0 {
		t.Errorf("P2 DigitalGallons = %v, want 0 for a headcount project", summary.Projects[1].DigitalGallons)
	}
	wantNPV := USD(p.ProjectNPV("P1")).Add(USD(p.ProjectNPV("P2")))
	if !summary.NPV.Equal(wantNPV) {
		t.Errorf("NPV = %v, want %v", summary.NPV, wantNPV)
	}
	if len(summary.Discounted) != cfg.Horizon() {
		t.Errorf("len(Discounted) = %d, want %d", len(summary.Discounted), cfg.Horizon())
	}
}

func TestNewSummary_RequiresCurrency(t *testing.T) {
	p, _ := NewPortfolio(qtrly())
	if _, err := NewSummary(p, ""); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("NewSummary() error = %v, want ErrInvalidParameter", err)
	}
}
