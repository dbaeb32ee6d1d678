package main

import (
	"github.com/Sidharth-A-691/code-generator/internal/agent"
	"github.com/Sidharth-A-691/code-generator/internal/config"
	"github.com/Sidharth-A-691/code-generator/internal/generation"
	"github.com/Sidharth-A-691/code-generator/internal/planner"
	"github.com/Sidharth-A-691/code-generator/internal/runs"
	"github.com/Sidharth-A-691/code-generator/internal/workspace"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config    *config.Config
	workspace *workspace.Root
	runs      *runs.Store
	services  *Services
	router    *gin.Engine
}

// holds the LLM-backed services (planning, execution, generation orchestration)
type Services struct {
	Planner    *planner.Planner
	Agent      *agent.Agent
	Generation *generation.Service
}
