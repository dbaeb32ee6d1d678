package tools

import (
	"context"
	"fmt"

	"github.com/Sidharth-A-691/code-generator/internal/workspace"
)

// Tool is a single operation the execution agent can invoke. Name,
// Description and Parameters are advertised to the model through the chat
// completions tools parameter; Execute runs the operation against the
// output root. Every path a tool touches resolves through the root, so a
// tool can never reach outside it.
//
// Execute returns the human-readable result the model should see. A non-nil
// error marks the invocation as failed; the agent feeds the error text back
// to the model as the tool result instead of aborting the run.
type Tool interface {
	Name() string
	Description() string
	Parameters() map[string]any
	Execute(ctx context.Context, root *workspace.Root, args map[string]any) (string, error)
}

// returns the required string argument or an error naming what is missing
func stringArg(args map[string]any, key string) (string, error) {
	value, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing required argument %q", key)
	}

	text, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("argument %q must be a string", key)
	}

	return text, nil
}

// returns the string argument, falling back to a default when the model
// omitted it or sent an empty value
func stringArgDefault(args map[string]any, key, fallback string) (string, error) {
	value, ok := args[key]
	if !ok || value == nil {
		return fallback, nil
	}

	text, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("argument %q must be a string", key)
	}

	if text == "" {
		return fallback, nil
	}

	return text, nil
}
