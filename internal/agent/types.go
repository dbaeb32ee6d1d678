package agent

import (
	"github.com/Sidharth-A-691/code-generator/internal/llm"
	"github.com/Sidharth-A-691/code-generator/internal/tools"
)

// Agent drives the tool-calling loop that turns a scaffolding plan into
// files on disk. One Execute call handles one plan run; the agent itself is
// stateless and safe to share.
type Agent struct {
	caller        llm.ToolCaller
	registry      *tools.Registry
	maxIterations int
}

// ExecuteRequest carries one plan run: the ordered steps plus the design
// documents the planner produced, included as context for the model.
type ExecuteRequest struct {
	HighLevelDesign string
	LowLevelDesign  string
	Plan            []string
}

// Result summarizes a run that reached completion.
type Result struct {
	Summary    string `json:"summary"`
	Iterations int    `json:"iterations"`
	ToolCalls  int    `json:"tool_calls"`
}
