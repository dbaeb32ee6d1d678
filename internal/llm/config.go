package llm

import (
	"fmt"
	"os"
	"strconv"
)

// loadConfig loads LLM configuration from environment variables
func loadConfig() (*Config, error) {
	// planner configuration
	plannerProvider := Provider(os.Getenv("PLANNER_PROVIDER"))
	if plannerProvider == "" {
		plannerProvider = ProviderOpenAI // default
	}

	var plannerAPIKey string

	switch plannerProvider {
	case ProviderOpenAI:
		plannerAPIKey = os.Getenv("OPENAI_API_KEY")
		if plannerAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
	case ProviderAnthropic:
		plannerAPIKey = os.Getenv("ANTHROPIC_API_KEY")
		if plannerAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
		}
	default:
		return nil, fmt.Errorf("unsupported planner provider: %s", plannerProvider)
	}

	plannerModel := os.Getenv("PLANNER_MODEL")
	if plannerModel == "" {
		switch plannerProvider {
		case ProviderAnthropic:
			plannerModel = "claude-sonnet-4-20250514" // default
		default:
			plannerModel = "gpt-4o" // default
		}
	}

	// agent configuration; tool calling is only wired for the OpenAI
	// chat/completions protocol
	agentProvider := Provider(os.Getenv("AGENT_PROVIDER"))
	if agentProvider == "" {
		agentProvider = ProviderOpenAI // default
	}

	if agentProvider != ProviderOpenAI {
		return nil, fmt.Errorf("unsupported agent provider: %s (tool calling requires openai)", agentProvider)
	}

	agentAPIKey := os.Getenv("OPENAI_API_KEY")
	if agentAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	agentModel := os.Getenv("AGENT_MODEL")
	if agentModel == "" {
		agentModel = "gpt-4o" // default
	}

	// planner optional parameters
	plannerMaxTokens := 4096 // default
	if maxTokensStr := os.Getenv("PLANNER_MAX_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil {
			plannerMaxTokens = val
		}
	}

	plannerTemperature := float32(0.2) // default
	if tempStr := os.Getenv("PLANNER_TEMPERATURE"); tempStr != "" {
		if val, err := strconv.ParseFloat(tempStr, 32); err == nil {
			plannerTemperature = float32(val)
		}
	}

	// agent optional parameters
	agentMaxTokens := 4096 // default
	if maxTokensStr := os.Getenv("AGENT_MAX_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil {
			agentMaxTokens = val
		}
	}

	return &Config{
		PlannerProvider:    plannerProvider,
		PlannerAPIKey:      plannerAPIKey,
		PlannerModel:       plannerModel,
		PlannerMaxTokens:   plannerMaxTokens,
		PlannerTemperature: plannerTemperature,
		AgentProvider:      agentProvider,
		AgentAPIKey:        agentAPIKey,
		AgentModel:         agentModel,
		AgentMaxTokens:     agentMaxTokens,
		OpenAIBaseURL:      os.Getenv("OPENAI_BASE_URL"),
	}, nil
}
