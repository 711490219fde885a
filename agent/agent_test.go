package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/avessier/flowcast"
	"google.golang.org/genai"
)

func loadTestPortfolio() (*flowcast.Portfolio, error) {
	cfg := flowcast.Config{YearsInModel: 1, PeriodsInYear: 4}
	p, err := flowcast.NewPortfolio(cfg)
	if err != nil {
		return nil, err
	}
	flow, err := flowcast.NewCashFlow(flowcast.FlowParameters{
		Name:         "pump revenue",
		ProjectCode:  "P100",
		MaxAmt:       100,
		ScaleUpQtrs:  2,
		Function:     flowcast.Linear,
		DiscountRate: 0.02,
	}, cfg)
	if err != nil {
		return nil, err
	}
	if err := p.Add(flow); err != nil {
		return nil, err
	}
	return p, nil
}

func TestPlannerDispatch(t *testing.T) {
	planner := NewPlanner(loadTestPortfolio, "USD")
	ctx := context.Background()

	summary := planner.dispatch(ctx, &genai.FunctionCall{ID: "1", Name: "Summary"})
	out, ok := summary.Response["output"].(string)
	if !ok {
		t.Fatalf("Summary response = %v, want an output", summary.Response)
	}
	if !strings.Contains(out, "P100") {
		t.Errorf("Summary output missing project P100:\n%s", out)
	}

	project := planner.dispatch(ctx, &genai.FunctionCall{ID: "2", Name: "Project", Args: map[string]any{"code": "P100"}})
	out, ok = project.Response["output"].(string)
	if !ok {
		t.Fatalf("Project response = %v, want an output", project.Response)
	}
	if !strings.Contains(out, "pump revenue") {
		t.Errorf("Project output missing the flow name:\n%s", out)
	}
}

func TestPlannerDispatch_Errors(t *testing.T) {
	planner := NewPlanner(loadTestPortfolio, "USD")
	ctx := context.Background()

	// tool failures are reported to the model, never dropped
	unknown := planner.dispatch(ctx, &genai.FunctionCall{ID: "1", Name: "Project", Args: map[string]any{"code": "NOPE"}})
	if _, ok := unknown.Response["error"]; !ok {
		t.Errorf("Project(NOPE) response = %v, want an error", unknown.Response)
	}

	badArg := planner.dispatch(ctx, &genai.FunctionCall{ID: "2", Name: "Project", Args: map[string]any{"code": 7}})
	if _, ok := badArg.Response["error"]; !ok {
		t.Errorf("Project(7) response = %v, want an error", badArg.Response)
	}

	missing := planner.dispatch(ctx, &genai.FunctionCall{ID: "3", Name: "Refinance"})
	if _, ok := missing.Response["error"]; !ok {
		t.Errorf("unknown function response = %v, want an error", missing.Response)
	}
}

func TestCoordinatorConsultsTheTeam(t *testing.T) {
	analyst := NewAnalyst()
	planner := NewPlanner(loadTestPortfolio, "USD")
	coordinator := newCoordinator([]*Expert{analyst, planner})

	cfg := coordinator.config()
	var names []string
	for _, tool := range cfg.Tools {
		for _, decl := range tool.FunctionDeclarations {
			names = append(names, decl.Name)
		}
	}
	want := []string{"Analyst", "Planner"}
	if len(names) != len(want) || names[0] != want[0] || names[1] != want[1] {
		t.Errorf("coordinator tools = %v, want %v", names, want)
	}
}

func TestAnalystIsSearchGrounded(t *testing.T) {
	cfg := NewAnalyst().config()
	for _, tool := range cfg.Tools {
		if tool.GoogleSearch != nil {
			return
		}
	}
	t.Error("analyst config carries no Google Search tool")
}
