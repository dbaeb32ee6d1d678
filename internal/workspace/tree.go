package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"
)

// TreeNode is one entry in a project file tree. Paths are relative to the
// output root and use forward slashes so frontends can use them directly.
type TreeNode struct {
	Name     string      `json:"name"`
	Path     string      `json:"path"`
	Type     string      `json:"type"`
	Children []*TreeNode `json:"children,omitempty"`
}

// Tree walks the named project directory and returns its nested file tree.
// The tree is derived from disk on every call, so files written by the agent
// after project creation always show up.
func (r *Root) Tree(project string) (*TreeNode, error) {
	abs, err := r.Resolve(project)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat project: %w", err)
	}

	rel := filepath.ToSlash(project)

	if !info.IsDir() {
		return &TreeNode{Name: info.Name(), Path: rel, Type: NodeTypeFile}, nil
	}

	return r.buildTree(abs, rel, info.Name())
}

func (r *Root) buildTree(abs, rel, name string) (*TreeNode, error) {
	node := &TreeNode{Name: name, Path: rel, Type: NodeTypeDirectory}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	// directories first, files second; os.ReadDir already sorts by name
	var files []*TreeNode

	for _, entry := range entries {
		childAbs := filepath.Join(abs, entry.Name())
		childRel := rel + "/" + entry.Name()

		if entry.IsDir() {
			child, err := r.buildTree(childAbs, childRel, entry.Name())
			if err != nil {
				return nil, err
			}

			node.Children = append(node.Children, child)

			continue
		}

		files = append(files, &TreeNode{Name: entry.Name(), Path: childRel, Type: NodeTypeFile})
	}

	node.Children = append(node.Children, files...)

	return node, nil
}
