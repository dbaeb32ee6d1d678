package main

import (
	"fmt"

	"github.com/Sidharth-A-691/code-generator/internal/config"
	"github.com/Sidharth-A-691/code-generator/internal/logger"
	"github.com/Sidharth-A-691/code-generator/internal/runs"
	"github.com/Sidharth-A-691/code-generator/internal/workspace"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	// all generated projects live under this root; every file operation
	// is resolved against it and traversal outside it is rejected
	root, err := workspace.New(cfg.OutputRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare output root: %w", err)
	}

	store := runs.NewStore()

	services, err := InitializeServices(cfg, root, store)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	logger.Info("generation pipeline initialized",
		"output_root", root.Path(),
		"max_iterations", cfg.AgentMaxIterations,
		"run_timeout", cfg.AgentTimeout,
	)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	server := &Server{
		config:    cfg,
		workspace: root,
		runs:      store,
		services:  services,
		router:    router,
	}

	if err := RegisterRoutes(router, server); err != nil {
		return nil, fmt.Errorf("failed to register routes: %w", err)
	}

	return server, nil
}
