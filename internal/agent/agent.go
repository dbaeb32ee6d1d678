package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Sidharth-A-691/code-generator/internal/llm"
	"github.com/Sidharth-A-691/code-generator/internal/logger"
	"github.com/Sidharth-A-691/code-generator/internal/tools"
	"github.com/Sidharth-A-691/code-generator/internal/workspace"
)

const (
	defaultMaxIterations = 25

	// per-tool budget; the bootstrap tools make network/process calls
	toolTimeout = 5 * time.Minute
)

func New(caller llm.ToolCaller, registry *tools.Registry, maxIterations int) *Agent {
	if maxIterations <= 0 {
		maxIterations = defaultMaxIterations
	}

	return &Agent{
		caller:        caller,
		registry:      registry,
		maxIterations: maxIterations,
	}
}

// Execute runs the plan to completion against the given output root. Each
// iteration is one chat completion carrying the tool catalogue; the loop
// ends when the model stops requesting tools (done), the iteration cap is
// hit, or the context is cancelled. Tool failures are fed back into the
// conversation as result text, never returned as errors, so the model can
// correct course.
func (a *Agent) Execute(ctx context.Context, root *workspace.Root, req ExecuteRequest) (*Result, error) {
	if len(req.Plan) == 0 {
		return nil, errors.New("plan has no steps")
	}

	messages := []llm.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildExecutionPrompt(req)},
	}

	catalogue := a.registry.Definitions()
	result := &Result{}

	logger.Info("starting plan execution",
		"steps", len(req.Plan),
		"max_iterations", a.maxIterations,
		"model", a.caller.Model(),
	)

	for iteration := 1; iteration <= a.maxIterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("plan execution aborted: %w", err)
		}

		resp, err := a.caller.ChatWithTools(ctx, llm.ToolChatRequest{
			Messages: messages,
			Tools:    catalogue,
		})
		if err != nil {
			return nil, fmt.Errorf("agent completion failed on iteration %d: %w", iteration, err)
		}

		result.Iterations = iteration
		messages = append(messages, resp.Message)

		if len(resp.Message.ToolCalls) == 0 {
			result.Summary = strings.TrimSpace(resp.Message.Content)
			if result.Summary == "" {
				result.Summary = "Plan executed successfully."
			}

			logger.Info("plan execution finished",
				"iterations", result.Iterations,
				"tool_calls", result.ToolCalls,
			)

			return result, nil
		}

		for _, call := range resp.Message.ToolCalls {
			output := a.dispatch(ctx, root, iteration, call)
			result.ToolCalls++

			messages = append(messages, llm.ChatMessage{
				Role:       "tool",
				Content:    output,
				ToolCallID: call.ID,
				Name:       call.Function.Name,
			})
		}
	}

	return nil, fmt.Errorf("plan execution exceeded %d iterations without completing", a.maxIterations)
}

// runs one tool call and renders its outcome as the text the model sees.
// Failures keep the original message content but gain the Error prefix the
// model is told to watch for.
func (a *Agent) dispatch(ctx context.Context, root *workspace.Root, iteration int, call llm.ToolCall) string {
	name := call.Function.Name

	tool, ok := a.registry.Get(name)
	if !ok {
		logger.Warn("model requested unknown tool", "iteration", iteration, "tool", name)

		return fmt.Sprintf("Error: unknown tool '%s'. Available tools: %s.", name, strings.Join(a.registry.Names(), ", "))
	}

	args := map[string]any{}

	if raw := strings.TrimSpace(call.Function.Arguments); raw != "" {
		if err := json.Unmarshal([]byte(raw), &args); err != nil {
			logger.Warn("tool arguments were not valid json", "iteration", iteration, "tool", name, "error", err)

			return fmt.Sprintf("Error: arguments for '%s' were not valid JSON: %v", name, err)
		}
	}

	logger.Info("executing tool", "iteration", iteration, "tool", name, "args", summarizeArgs(args))

	toolCtx, cancel := context.WithTimeout(ctx, toolTimeout)
	defer cancel()

	output, err := tool.Execute(toolCtx, root, args)
	if err != nil {
		logger.Warn("tool failed", "iteration", iteration, "tool", name, "error", err)

		return "Error: " + err.Error()
	}

	logger.Debug("tool succeeded", "iteration", iteration, "tool", name)

	return output
}

// renders tool arguments for logs, truncating long values like file content
func summarizeArgs(args map[string]any) string {
	keys := make([]string, 0, len(args))
	for key := range args {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))

	for _, key := range keys {
		value := fmt.Sprintf("%v", args[key])
		if len(value) > 120 {
			value = value[:120] + "..."
		}

		parts = append(parts, key+"="+value)
	}

	return strings.Join(parts, " ")
}
