package agent

import (
	"context"
	"fmt"

	"github.com/avessier/flowcast"
	"github.com/avessier/flowcast/docs"
	"github.com/avessier/flowcast/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newCoordinator creates the expert in charge of the conversation; the
// team members are its tools.
func newCoordinator(team []*Expert) *Expert {
	tools := make([]Tool, 0, len(team))
	for _, e := range team {
		tools = append(tools, e)
	}
	return &Expert{
		Name:  "Coordinator",
		Tools: tools,
		Instruction: `
		As a coordinator you are in charge of the conversation and solving the user's request.

		Learn about the expert's skill that you can get from the Tools to ask them questions.
		They are at your service and 100% dedicated to you, they keep context of your previous questions.

		The user is here primarily to understand the value of the projects in his investment portfolio:
		their net present value, how they ramp up over the quarters, and what drives them.

		Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.

		The user will assume that you know about his projects, check the portfolio first to understand what they are.
	`,
	}
}

// NewAnalyst creates the market research expert. It grounds its answers
// with Google Search.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert market analyst,
		very well aware of fuel retail, payments and loyalty programs,
		and of the latest news about the relevant markets and competitors.
		Ask the Analyst whenever you need recent or grounding information.`,
		Search: true,
		Instruction: `
		You are an expert market analyst for fuel retail and digital commerce.
		You can search and find about anything related to markets, competitors,
		payment networks and consumer behavior. You leverage Google Search to
		ground your assertions in a solid truth.
		You can get the latest news too, and you know how to relate them to the user's request.
			`,
	}
}

// NewPlanner creates the portfolio expert. It answers questions about
// the user's portfolio by calling the projection engine on the
// assumptions sheet loaded by load.
func NewPlanner(load func() (*flowcast.Portfolio, error), currency string) *Expert {
	return &Expert{
		Name: "Planner",
		Description: `This is the Planner. He is in charge of the user's project portfolio.
		He can compute the relevant figures about each project: net present value,
		quarterly cash flows, digital gallons volume and variable costs.`,
		Tools: []Tool{
			&summaryTool{load: load, currency: currency},
			&projectTool{load: load, currency: currency},
		},
		Instruction: `
			You are a financial planner in charge of the user's project portfolio.
			You know how to use the Tools to extract relevant information about
			the portfolio: its rollup summary and per-project reports.
			You are part of a team of experts, yours is everything about the
			user's portfolio. They might ask you questions about it, pardon
			their approximative language and figure out what they meant.
		`,
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// summaryTool renders the whole-portfolio rollup.
type summaryTool struct {
	load     func() (*flowcast.Portfolio, error)
	currency string
}

func (s *summaryTool) Spec() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name: "Summary",
		Description: `Summary computes the whole-portfolio rollup: net present value,
		nominal total, digital gallons and variable costs per project, plus totals.

		` + must(docs.GetTopic("model")),
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted summary of the portfolio, one line per project plus totals.",
		},
	}
}

func (s *summaryTool) Run(ctx context.Context, args map[string]any) (string, error) {
	p, err := s.load()
	if err != nil {
		return "", fmt.Errorf("could not load portfolio: %w", err)
	}
	summary, err := flowcast.NewSummary(p, s.currency)
	if err != nil {
		return "", err
	}
	return renderer.SummaryMarkdown(summary), nil
}

// projectTool renders one project's detailed report.
type projectTool struct {
	load     func() (*flowcast.Portfolio, error)
	currency string
}

func (pt *projectTool) Spec() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name: "Project",
		Description: `Project details one project of the portfolio: every flow with
		its net present value, and the present value of the project per quarter.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"code": {
					Type:        genai.TypeString,
					Description: "The project code, as listed in the Summary.",
				},
			},
			Required: []string{"code"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted report of the project's flows and quarterly present values.",
		},
	}
}

func (pt *projectTool) Run(ctx context.Context, args map[string]any) (string, error) {
	code, ok := args["code"].(string)
	if !ok {
		return "", fmt.Errorf("argument 'code' is %T, expected a string", args["code"])
	}
	p, err := pt.load()
	if err != nil {
		return "", fmt.Errorf("could not load portfolio: %w", err)
	}
	if len(p.Flows(code)) == 0 {
		return "", fmt.Errorf("unknown project %q, use Summary to list the known ones", code)
	}
	return renderer.ProjectMarkdown(code, p, pt.currency), nil
}
