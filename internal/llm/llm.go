package llm

import (
	"context"
	"fmt"
)

// binds the planner and agent roles to their configured provider clients
type Clients struct {
	Planner TextGenerator
	Agent   ToolCaller
}

// creates the role clients with auto-configuration from environment variables
func NewClients(ctx context.Context) (*Clients, error) {
	config, err := loadConfig()

	if err != nil {
		return nil, fmt.Errorf("failed to load LLM config: %w", err)
	}

	return NewClientsWithConfig(ctx, config)
}

// creates the role clients with explicit configuration
func NewClientsWithConfig(ctx context.Context, config *Config) (*Clients, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	// create planner based on provider (for scaffolding plan generation)
	var planner TextGenerator

	switch config.PlannerProvider {
	case ProviderOpenAI:
		planner = NewOpenAIClient(OpenAIConfig{
			APIKey:      config.PlannerAPIKey,
			BaseURL:     config.OpenAIBaseURL,
			Model:       config.PlannerModel,
			MaxTokens:   config.PlannerMaxTokens,
			Temperature: config.PlannerTemperature,
		})
	case ProviderAnthropic:
		planner = NewAnthropicClient(AnthropicConfig{
			APIKey:      config.PlannerAPIKey,
			Model:       config.PlannerModel,
			MaxTokens:   config.PlannerMaxTokens,
			Temperature: config.PlannerTemperature,
		})
	default:
		return nil, fmt.Errorf("unsupported planner provider: %s", config.PlannerProvider)
	}

	// create the agent client (tool calling requires the OpenAI protocol)
	if config.AgentProvider != ProviderOpenAI {
		return nil, fmt.Errorf("unsupported agent provider: %s", config.AgentProvider)
	}

	agent := NewOpenAIClient(OpenAIConfig{
		APIKey:    config.AgentAPIKey,
		BaseURL:   config.OpenAIBaseURL,
		Model:     config.AgentModel,
		MaxTokens: config.AgentMaxTokens,
	})

	return &Clients{
		Planner: planner,
		Agent:   agent,
	}, nil
}
