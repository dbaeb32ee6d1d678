package llm

import "context"

// represents different LLM providers
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

// generates free text from a prompt; used for plan generation
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error)
	Model() string
}

// runs one tool-calling chat turn; used by the execution agent
type ToolCaller interface {
	ChatWithTools(ctx context.Context, req ToolChatRequest) (*ToolChatResponse, error)
	Model() string
}

// represents a single conversation turn for text generation
type Message struct {
	Role    string `json:"role"`    // "user" or "assistant"
	Content string `json:"content"` // message content
}

// contains all inputs for a text generation call
type TextGenerationRequest struct {
	SystemPrompt string
	Messages     []Message
	MaxTokens    int
}

// contains the generated text and token usage
type TextGenerationResponse struct {
	Text  string
	Usage Usage
}

// token accounting reported by the provider
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// a chat message on the tool-calling path; mirrors the OpenAI wire shape
type ChatMessage struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// a tool invocation requested by the model
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function ToolFunction `json:"function"`
}

// the tool name and its arguments as a JSON object string
type ToolFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// describes one tool in the catalogue sent to the model
type ToolDefinition struct {
	Type     string         `json:"type"`
	Function FunctionSchema `json:"function"`
}

// the function schema advertised for a tool
type FunctionSchema struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// contains all inputs for one tool-calling turn
type ToolChatRequest struct {
	Messages  []ChatMessage
	Tools     []ToolDefinition
	MaxTokens int
}

// contains the assistant message (text and/or tool calls) and usage
type ToolChatResponse struct {
	Message ChatMessage
	Usage   Usage
}

// holds configuration for LLM initialization
type Config struct {
	// planner configuration (structured plan generation)
	PlannerProvider    Provider
	PlannerAPIKey      string
	PlannerModel       string // e.g., "gpt-4o" or "claude-sonnet-4-20250514"
	PlannerMaxTokens   int
	PlannerTemperature float32

	// agent configuration (tool-calling execution loop)
	AgentProvider  Provider
	AgentAPIKey    string
	AgentModel     string // e.g., "gpt-4o"
	AgentMaxTokens int

	// optional override for OpenAI-compatible endpoints (Azure, proxies)
	OpenAIBaseURL string
}
