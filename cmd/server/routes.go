package main

import (
	"fmt"

	"github.com/Sidharth-A-691/code-generator/api/rest/download"
	"github.com/Sidharth-A-691/code-generator/api/rest/files"
	"github.com/Sidharth-A-691/code-generator/api/rest/generate"
	"github.com/Sidharth-A-691/code-generator/api/rest/health"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) error {
	router.Use(CORSMiddleware(server.config.AllowedOrigins))
	router.GET("/health", health.Handler)

	limitGenerate, err := GenerateRateLimiter(server.config.GenerateRateLimit)
	if err != nil {
		return fmt.Errorf("failed to build rate limiter: %w", err)
	}

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		generate.RegisterRoutes(v1, server.services.Generation, server.runs, limitGenerate)
		files.RegisterRoutes(v1, server.workspace)
		download.RegisterRoutes(v1, server.workspace)
	}

	return nil
}
