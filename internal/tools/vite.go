package tools

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/Sidharth-A-691/code-generator/internal/logger"
	"github.com/Sidharth-A-691/code-generator/internal/workspace"
)

const viteScaffoldTimeout = 5 * time.Minute

// CommandRunner executes an external command in the given directory and
// returns its combined output. Swapped out in tests so no npm is needed.
type CommandRunner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	return cmd.CombinedOutput()
}

// ReactViteTool bootstraps a React project by running the non-interactive
// `npm create vite@latest` scaffolder inside the output root.
type ReactViteTool struct {
	Run CommandRunner
}

func NewReactViteTool() *ReactViteTool {
	return &ReactViteTool{Run: runCommand}
}

func (t *ReactViteTool) Name() string { return "create_react_vite_project" }

func (t *ReactViteTool) Description() string {
	return "Creates a new React project in a new directory named after the project_name. It uses the non-interactive 'npm create vite@latest' command. Use this as the first step for a React frontend."
}

func (t *ReactViteTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"project_name": map[string]any{
				"type":        "string",
				"description": "The name and directory for the project. Defaults to 'frontend'.",
			},
		},
		"required": []string{},
	}
}

func (t *ReactViteTool) Execute(ctx context.Context, root *workspace.Root, args map[string]any) (string, error) {
	projectName, err := stringArgDefault(args, "project_name", "frontend")
	if err != nil {
		return "", err
	}

	// the scaffolder creates a directory named after the project, so the
	// name must resolve inside the output root
	if _, err := root.Resolve(projectName); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, viteScaffoldTimeout)
	defer cancel()

	logger.Info("scaffolding react project", "project_name", projectName)

	output, err := t.Run(ctx, root.Path(), "npm", "create", "vite@latest", projectName, "--", "--template", "react")
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", errors.New("The command to create the React project timed out after 5 minutes.")
		}

		return "", fmt.Errorf("creating React project '%s': %v\nOutput:\n%s", projectName, err, string(output))
	}

	logger.Info("react project scaffolded", "project_name", projectName)

	return fmt.Sprintf("React + Vite project '%s' created successfully.", projectName), nil
}
