package config

import "time"

// holds server-level configuration loaded from the environment
type Config struct {
	Environment        string
	Port               string
	OutputRoot         string
	AllowedOrigins     []string
	GenerateRateLimit  string
	AgentMaxIterations int
	AgentTimeout       time.Duration
}
