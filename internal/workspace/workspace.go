package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// reports a path resolving outside the output root; mapped to a client
// error by HTTP handlers and to a tool failure by the execution agent
var ErrPathEscape = errors.New("path escapes the output root")

// Root is the configured output root directory. All generated projects live
// beneath it, and every path the service touches resolves through it first.
type Root struct {
	path string
}

// creates the output root directory if needed and pins it to an absolute path
func New(path string) (*Root, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output root %q: %w", path, err)
	}

	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output root %q: %w", abs, err)
	}

	return &Root{path: abs}, nil
}

// returns the absolute path of the output root
func (r *Root) Path() string {
	return r.path
}

// Resolve joins the given path segments beneath the root and verifies the
// result stays inside it. Absolute paths and any `..` segment are rejected
// before filesystem access, even when the cleaned path would land back
// inside the root.
func (r *Root) Resolve(parts ...string) (string, error) {
	for _, part := range parts {
		if filepath.IsAbs(part) {
			return "", fmt.Errorf("%w: %q is an absolute path", ErrPathEscape, part)
		}

		for _, segment := range strings.Split(filepath.ToSlash(part), "/") {
			if segment == ".." {
				return "", fmt.Errorf("%w: %q contains a parent reference", ErrPathEscape, part)
			}
		}
	}

	rel := filepath.Join(parts...)
	if rel == "" || rel == "." {
		return r.path, nil
	}

	abs := filepath.Clean(filepath.Join(r.path, rel))

	// containment check kept as a second line of defense
	if abs != r.path && !strings.HasPrefix(abs, r.path+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %q", ErrPathEscape, rel)
	}

	return abs, nil
}

// reads the file at the given relative path and returns its content
func (r *Root) ReadFile(parts ...string) (string, error) {
	abs, err := r.Resolve(parts...)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return string(content), nil
}

// writes (or overwrites) the file at the given relative path, creating any
// missing parent directories
func (r *Root) WriteFile(content string, parts ...string) error {
	abs, err := r.Resolve(parts...)
	if err != nil {
		return err
	}

	if parent := filepath.Dir(abs); parent != r.path {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("failed to create parent directories: %w", err)
		}
	}

	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// creates the directory (and intermediate segments) at the relative path;
// a no-op when it already exists
func (r *Root) Mkdir(parts ...string) error {
	abs, err := r.Resolve(parts...)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(abs, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	return nil
}

// lists the immediate children of the directory at the relative path,
// directories suffixed with a separator
func (r *Root) List(parts ...string) ([]string, error) {
	abs, err := r.Resolve(parts...)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}

		names = append(names, name)
	}

	return names, nil
}
