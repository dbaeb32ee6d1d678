package agent

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are an AI agent that executes a plan using filesystem tools. You are running inside the project's output directory. Execute the user's plan step-by-step."

// builds the user message: the designs as context, then the plan steps
// wrapped in markers so the model treats them as the single source of truth
func buildExecutionPrompt(req ExecuteRequest) string {
	var builder strings.Builder

	builder.WriteString("Execute the following plan step-by-step. Your current working directory is the root for the project.\n")

	if req.HighLevelDesign != "" {
		builder.WriteString("\nHigh-level design (context):\n")
		builder.WriteString(req.HighLevelDesign)
		builder.WriteString("\n")
	}

	if req.LowLevelDesign != "" {
		builder.WriteString("\nLow-level design (context):\n")
		builder.WriteString(req.LowLevelDesign)
		builder.WriteString("\n")
	}

	builder.WriteString("\n--- BEGIN PLAN ---\n")

	for i, step := range req.Plan {
		fmt.Fprintf(&builder, "%d. %s\n", i+1, step)
	}

	builder.WriteString("--- END PLAN ---\n")

	return builder.String()
}
