package main

import (
	"context"
	"fmt"

	"github.com/Sidharth-A-691/code-generator/internal/agent"
	"github.com/Sidharth-A-691/code-generator/internal/config"
	"github.com/Sidharth-A-691/code-generator/internal/generation"
	"github.com/Sidharth-A-691/code-generator/internal/llm"
	"github.com/Sidharth-A-691/code-generator/internal/planner"
	"github.com/Sidharth-A-691/code-generator/internal/runs"
	"github.com/Sidharth-A-691/code-generator/internal/tools"
	"github.com/Sidharth-A-691/code-generator/internal/workspace"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config, root *workspace.Root, store *runs.Store) (*Services, error) {
	clients, err := llm.NewClients(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM clients: %w", err)
	}

	plannerService := planner.New(clients.Planner)
	agentService := agent.New(clients.Agent, tools.DefaultRegistry(), cfg.AgentMaxIterations)
	generationService := generation.New(plannerService, agentService, root, store, cfg.AgentTimeout)

	return &Services{
		Planner:    plannerService,
		Agent:      agentService,
		Generation: generationService,
	}, nil
}
