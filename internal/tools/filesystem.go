package tools

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/Sidharth-A-691/code-generator/internal/workspace"
)

// CreateDirectoryTool creates a directory (including intermediate segments)
// beneath the output root. Safe to call repeatedly.
type CreateDirectoryTool struct{}

func (t *CreateDirectoryTool) Name() string { return "create_directory" }

func (t *CreateDirectoryTool) Description() string {
	return "Creates a new directory at the specified path. The path must be relative to the project output directory. This tool can also create nested directories (e.g., 'src/components')."
}

func (t *CreateDirectoryTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"path": map[string]any{
				"type":        "string",
				"description": "Relative path of the directory to create.",
			},
		},
		"required": []string{"path"},
	}
}

func (t *CreateDirectoryTool) Execute(ctx context.Context, root *workspace.Root, args map[string]any) (string, error) {
	path, err := stringArg(args, "path")
	if err != nil {
		return "", err
	}

	if err := root.Mkdir(path); err != nil {
		return "", fmt.Errorf("creating directory '%s': %w", path, err)
	}

	return fmt.Sprintf("Directory '%s' created successfully.", path), nil
}

// WriteFileTool writes or overwrites a file beneath the output root,
// creating missing parent directories on the way.
type WriteFileTool struct{}

func (t *WriteFileTool) Name() string { return "write_file" }

func (t *WriteFileTool) Description() string {
	return "Writes or overwrites content to a file at the specified relative path. If the parent directories for the file do not exist, they will be created automatically."
}

func (t *WriteFileTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"path": map[string]any{
				"type":        "string",
				"description": "Relative path of the file to write.",
			},
			"content": map[string]any{
				"type":        "string",
				"description": "Full content to write to the file.",
			},
		},
		"required": []string{"path", "content"},
	}
}

func (t *WriteFileTool) Execute(ctx context.Context, root *workspace.Root, args map[string]any) (string, error) {
	path, err := stringArg(args, "path")
	if err != nil {
		return "", err
	}

	content, err := stringArg(args, "content")
	if err != nil {
		return "", err
	}

	if err := root.WriteFile(content, path); err != nil {
		return "", fmt.Errorf("writing to file '%s': %w", path, err)
	}

	return fmt.Sprintf("File '%s' written successfully.", path), nil
}

// ReadFileTool returns the content of a file beneath the output root.
type ReadFileTool struct{}

func (t *ReadFileTool) Name() string { return "read_file" }

func (t *ReadFileTool) Description() string {
	return "Reads the entire content of a file at the specified relative path and returns it as a string."
}

func (t *ReadFileTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"path": map[string]any{
				"type":        "string",
				"description": "Relative path of the file to read.",
			},
		},
		"required": []string{"path"},
	}
}

func (t *ReadFileTool) Execute(ctx context.Context, root *workspace.Root, args map[string]any) (string, error) {
	path, err := stringArg(args, "path")
	if err != nil {
		return "", err
	}

	content, err := root.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("File not found at '%s'.", path)
		}

		return "", fmt.Errorf("reading file '%s': %w", path, err)
	}

	return content, nil
}

// ListDirectoryTool lists the immediate children of a directory beneath the
// output root; defaults to the root itself.
type ListDirectoryTool struct{}

func (t *ListDirectoryTool) Name() string { return "list_directory" }

func (t *ListDirectoryTool) Description() string {
	return "Lists all files and subdirectories within a specified relative path. Defaults to the project output directory if no path is provided."
}

func (t *ListDirectoryTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"path": map[string]any{
				"type":        "string",
				"description": "Relative path of the directory to list. Defaults to '.'.",
			},
		},
		"required": []string{},
	}
}

func (t *ListDirectoryTool) Execute(ctx context.Context, root *workspace.Root, args map[string]any) (string, error) {
	path, err := stringArgDefault(args, "path", ".")
	if err != nil {
		return "", err
	}

	entries, err := root.List(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("Directory not found at '%s'.", path)
		}

		return "", fmt.Errorf("listing directory '%s': %w", path, err)
	}

	if len(entries) == 0 {
		return fmt.Sprintf("The directory '%s' is empty.", path), nil
	}

	return fmt.Sprintf("Contents of directory '%s':\n- %s", path, strings.Join(entries, "\n- ")), nil
}
