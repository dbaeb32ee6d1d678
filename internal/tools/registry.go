package tools

import (
	"github.com/Sidharth-A-691/code-generator/internal/llm"
)

// Registry holds the fixed set of tools exposed to the execution agent.
// Registration order is preserved so the tool catalogue sent to the model
// is stable across runs.
type Registry struct {
	ordered []Tool
	byName  map[string]Tool
}

func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{byName: make(map[string]Tool, len(tools))}

	for _, tool := range tools {
		if _, exists := r.byName[tool.Name()]; exists {
			continue
		}

		r.ordered = append(r.ordered, tool)
		r.byName[tool.Name()] = tool
	}

	return r
}

// returns the default tool set: filesystem primitives plus the two
// project bootstrappers
func DefaultRegistry() *Registry {
	return NewRegistry(
		&CreateDirectoryTool{},
		&WriteFileTool{},
		&ReadFileTool{},
		&ListDirectoryTool{},
		NewSpringBootTool(),
		NewReactViteTool(),
	)
}

// looks up a tool by its advertised name
func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.byName[name]

	return tool, ok
}

// returns the registered tool names in registration order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ordered))

	for _, tool := range r.ordered {
		names = append(names, tool.Name())
	}

	return names
}

// builds the tool catalogue sent with every agent chat completion
func (r *Registry) Definitions() []llm.ToolDefinition {
	defs := make([]llm.ToolDefinition, 0, len(r.ordered))

	for _, tool := range r.ordered {
		defs = append(defs, llm.ToolDefinition{
			Type: "function",
			Function: llm.FunctionSchema{
				Name:        tool.Name(),
				Description: tool.Description(),
				Parameters:  tool.Parameters(),
			},
		})
	}

	return defs
}
