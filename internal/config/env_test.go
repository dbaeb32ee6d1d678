package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvironmentVariablesDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")
	t.Setenv("OUTPUT_ROOT", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("GENERATE_RATE_LIMIT", "")
	t.Setenv("AGENT_MAX_ITERATIONS", "")
	t.Setenv("AGENT_TIMEOUT_MINUTES", "")

	cfg, err := LoadEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./generated", cfg.OutputRoot)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "10-M", cfg.GenerateRateLimit)
	assert.Equal(t, 25, cfg.AgentMaxIterations)
	assert.Equal(t, 15*time.Minute, cfg.AgentTimeout)
}

func TestLoadEnvironmentVariablesOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("OUTPUT_ROOT", "/srv/generated")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("GENERATE_RATE_LIMIT", "5-M")
	t.Setenv("AGENT_MAX_ITERATIONS", "40")
	t.Setenv("AGENT_TIMEOUT_MINUTES", "30")

	cfg, err := LoadEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/srv/generated", cfg.OutputRoot)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "5-M", cfg.GenerateRateLimit)
	assert.Equal(t, 40, cfg.AgentMaxIterations)
	assert.Equal(t, 30*time.Minute, cfg.AgentTimeout)
}

func TestLoadEnvironmentVariablesRejectsBadNumbers(t *testing.T) {
	t.Setenv("AGENT_MAX_ITERATIONS", "zero")

	_, err := LoadEnvironmentVariables()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AGENT_MAX_ITERATIONS")

	t.Setenv("AGENT_MAX_ITERATIONS", "10")
	t.Setenv("AGENT_TIMEOUT_MINUTES", "-5")

	_, err = LoadEnvironmentVariables()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AGENT_TIMEOUT_MINUTES")
}

func TestParseOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, parseOrigins(""))
	assert.Equal(t, []string{"*"}, parseOrigins("*"))
	assert.Equal(t, []string{"*"}, parseOrigins(" , "))
	assert.Equal(t, []string{"http://localhost:5173"}, parseOrigins("http://localhost:5173"))
}
