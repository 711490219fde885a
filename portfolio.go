package flowcast

import (
	"fmt"
	"sort"
)

// Portfolio indexes flows by project code. Flows keep their insertion
// order within a project; projects iterate in code order so downstream
// reports are deterministic regardless of the sheet's row order.
type Portfolio struct {
	cfg    Config
	groups map[string][]*Flow
}

// NewPortfolio creates an empty portfolio for the given model config.
func NewPortfolio(cfg Config) (*Portfolio, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Portfolio{cfg: cfg, groups: make(map[string][]*Flow)}, nil
}

// Config returns the model configuration the portfolio was built with.
func (p *Portfolio) Config() Config { return p.cfg }

// Add appends a flow under its project code. Flows must span the
// portfolio's horizon and carry a project code.
func (p *Portfolio) Add(flows ...*Flow) error {
	for _, f := range flows {
		if f.ProjectCode() == "" {
			return fmt.Errorf("%w: flow %q has no project code", ErrInvalidParameter, f.Name())
		}
		if f.Horizon() != p.cfg.Horizon() {
			return fmt.Errorf("%w: flow %q spans %d periods, want %d", ErrInconsistentHorizon, f.Name(), f.Horizon(), p.cfg.Horizon())
		}
		p.groups[f.ProjectCode()] = append(p.groups[f.ProjectCode()], f)
	}
	return nil
}

// Len returns the total number of flows across all projects.
func (p *Portfolio) Len() int {
	var n int
	for _, flows := range p.groups {
		n += len(flows)
	}
	return n
}

// ProjectCodes returns all project codes in sorted order.
func (p *Portfolio) ProjectCodes() []string {
	codes := make([]string, 0, len(p.groups))
	for code := range p.groups {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Flows returns the flows of one project in insertion order.
func (p *Portfolio) Flows(code string) []*Flow { return p.groups[code] }

// AllFlows returns every flow, projects in code order, flows in
// insertion order within each project.
func (p *Portfolio) AllFlows() []*Flow {
	flows := make([]*Flow, 0, p.Len())
	for _, code := range p.ProjectCodes() {
		flows = append(flows, p.groups[code]...)
	}
	return flows
}

// ProjectSeries sums the selected series across one project's flows.
// An unknown project code yields an all-zero series.
func (p *Portfolio) ProjectSeries(code string, sel Series) ([]float64, error) {
	return CombineFlows(p.groups[code], sel, p.cfg.Horizon())
}

// Series sums the selected series across the whole portfolio.
func (p *Portfolio) Series(sel Series) ([]float64, error) {
	return CombineFlows(p.AllFlows(), sel, p.cfg.Horizon())
}

// ProjectNPV returns the net present value of one project.
func (p *Portfolio) ProjectNPV(code string) float64 {
	var total float64
	for _, f := range p.groups[code] {
		total += f.NPV()
	}
	return total
}

// NPV returns the net present value of the whole portfolio. Projects
// are summed in code order so the result is stable run to run.
func (p *Portfolio) NPV() float64 {
	var total float64
	for _, code := range p.ProjectCodes() {
		total += p.ProjectNPV(code)
	}
	return total
}
