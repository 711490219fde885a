package agent

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// Tool is a capability an Expert can call during a chat: the portfolio
// reports of the Planner, or another Expert consulted by the
// coordinator. Run returns markdown for the model to read.
type Tool interface {
	Spec() *genai.FunctionDeclaration
	Run(ctx context.Context, args map[string]any) (string, error)
}

// Expert is one chat session with a fixed role: a system instruction,
// optional Google Search grounding, and the tools it may call.
//
// An Expert is itself a Tool, so the coordinator consults its team the
// same way the Planner reads the portfolio.
type Expert struct {
	Name        string
	Description string
	Instruction string
	// Search grounds the expert's answers with Google Search.
	Search bool
	Tools  []Tool

	chat *genai.Chat
}

func (e *Expert) config() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: e.Instruction}}},
	}
	if e.Search {
		cfg.Tools = append(cfg.Tools, &genai.Tool{GoogleSearch: &genai.GoogleSearch{}})
	}
	if len(e.Tools) > 0 {
		decls := make([]*genai.FunctionDeclaration, 0, len(e.Tools))
		for _, t := range e.Tools {
			decls = append(decls, t.Spec())
		}
		cfg.Tools = append(cfg.Tools, &genai.Tool{FunctionDeclarations: decls})
	}
	return cfg
}

// Start opens the expert's chat session.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, model, e.config(), nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask sends parts to the expert and resolves its tool calls until a
// text answer comes back. Tool failures are reported to the model, not
// to the caller: the expert decides how to recover.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (string, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no answer from expert %s", e.Name)
	}
	part := resp.Candidates[0].Content.Parts[0]
	if part.FunctionCall != nil {
		return e.Ask(ctx, &genai.Part{FunctionResponse: e.dispatch(ctx, part.FunctionCall)})
	}
	return part.Text, nil
}

func (e *Expert) dispatch(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{ID: call.ID, Name: call.Name, Response: map[string]any{}}
	for _, t := range e.Tools {
		if t.Spec().Name != call.Name {
			continue
		}
		out, err := t.Run(ctx, call.Args)
		log.Printf("expert %q called %s (err: %v)", e.Name, call.Name, err)
		if err != nil {
			fresp.Response["error"] = err.Error()
		} else {
			fresp.Response["output"] = out
		}
		return fresp
	}
	fresp.Response["error"] = fmt.Sprintf("unknown function %s", call.Name)
	return fresp
}

// Spec declares the expert as a consultable tool.
func (e *Expert) Spec() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        e.Name,
		Description: e.Description,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": {
					Type:        genai.TypeString,
					Description: "The question to ask " + e.Name + ".",
				},
			},
			Required: []string{"question"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The expert's answer, in markdown.",
		},
	}
}

// Run forwards a consultation question to the expert's own chat.
func (e *Expert) Run(ctx context.Context, args map[string]any) (string, error) {
	question, ok := args["question"].(string)
	if !ok {
		return "", fmt.Errorf("argument 'question' is %T, expected a string", args["question"])
	}
	return e.Ask(ctx, &genai.Part{Text: question})
}
