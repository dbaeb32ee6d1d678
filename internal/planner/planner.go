package planner

import (
	"context"
	"fmt"

	"github.com/Sidharth-A-691/code-generator/internal/llm"
	"github.com/Sidharth-A-691/code-generator/internal/logger"
)

// Planner turns a generation request into a validated scaffolding plan with
// a single structured completion call.
type Planner struct {
	generator llm.TextGenerator
}

func New(generator llm.TextGenerator) *Planner {
	return &Planner{generator: generator}
}

// CreatePlan renders the planning prompt, runs the completion, and validates
// the decoded plan. Gateway and parse failures propagate; no partial plan is
// ever returned.
func (p *Planner) CreatePlan(ctx context.Context, req Request) (*ScaffoldingPlan, error) {
	prompt := buildPlanningPrompt(req)

	logger.Info("generating scaffolding plan",
		"project_type", req.ProjectType,
		"language", req.Language,
		"model", p.generator.Model(),
	)

	var plan ScaffoldingPlan

	err := llm.GenerateStructured(ctx, p.generator, llm.TextGenerationRequest{
		Messages: []llm.Message{{Role: "user", Content: prompt}},
	}, &plan)
	if err != nil {
		return nil, fmt.Errorf("plan generation failed: %w", err)
	}

	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("plan generation returned an incomplete plan: %w", err)
	}

	logger.Info("scaffolding plan ready", "steps", len(plan.Plan))

	return &plan, nil
}
