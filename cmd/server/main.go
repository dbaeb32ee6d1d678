package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sidharth-A-691/code-generator/internal/config"
	"github.com/Sidharth-A-691/code-generator/internal/logger"
)

// @title Code Generator API
// @version 1.0
// @description AI-powered application scaffolding service
// @description
// @description Features:
// @description - LLM-generated scaffolding plans (high/low level design + build steps)
// @description - Background plan execution with filesystem and project bootstrap tools
// @description - Browse, edit and download generated projects

// @host localhost:8080

func main() {
	logger.Info("starting code generator server")

	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// create server with all dependencies
	srv, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	httpServer := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     srv.router,
		ReadTimeout: 15 * time.Second,
		// the generate endpoint blocks on the planning completion, which
		// can take a couple of minutes including retries
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", cfg.Port, "output_root", cfg.OutputRoot)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// cancel in-flight generation runs so their goroutines exit promptly
	if n := srv.runs.CancelActive(); n > 0 {
		logger.Info("cancelled active generation runs", "count", n)
	}

	// graceful shutdown with 10 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}
