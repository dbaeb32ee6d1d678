package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort              = "8080"
	defaultOutputRoot        = "./generated"
	defaultGenerateRateLimit = "10-M"
	defaultMaxIterations     = 25
	defaultAgentTimeout      = 15 * time.Minute
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	outputRoot := os.Getenv("OUTPUT_ROOT")
	if outputRoot == "" {
		outputRoot = defaultOutputRoot
	}

	origins := parseOrigins(os.Getenv("ALLOWED_ORIGINS"))

	rateLimit := os.Getenv("GENERATE_RATE_LIMIT")
	if rateLimit == "" {
		rateLimit = defaultGenerateRateLimit
	}

	maxIterations := defaultMaxIterations

	if raw := os.Getenv("AGENT_MAX_ITERATIONS"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil || val <= 0 {
			return nil, fmt.Errorf("AGENT_MAX_ITERATIONS must be a positive integer, got %q", raw)
		}

		maxIterations = val
	}

	agentTimeout := defaultAgentTimeout

	if raw := os.Getenv("AGENT_TIMEOUT_MINUTES"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil || val <= 0 {
			return nil, fmt.Errorf("AGENT_TIMEOUT_MINUTES must be a positive integer, got %q", raw)
		}

		agentTimeout = time.Duration(val) * time.Minute
	}

	return &Config{
		Environment:        environment,
		Port:               port,
		OutputRoot:         outputRoot,
		AllowedOrigins:     origins,
		GenerateRateLimit:  rateLimit,
		AgentMaxIterations: maxIterations,
		AgentTimeout:       agentTimeout,
	}, nil
}

// splits a comma-separated origin list, defaulting to allow-all
func parseOrigins(raw string) []string {
	if raw == "" || raw == "*" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))

	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	if len(origins) == 0 {
		return []string{"*"}
	}

	return origins
}
