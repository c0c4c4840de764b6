package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	ToolServerURL string
	ToolNamespace string
	ToolTimeout   time.Duration
	AgentName     string

	PromptRatePerMillion     float64
	CompletionRatePerMillion float64

	StaleSourceTTL      time.Duration
	StaleSweepInterval  time.Duration
	StaleSweepBatchSize int
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "adforge"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	toolServer := strings.TrimSpace(os.Getenv("TOOL_SERVER_URL"))
	if toolServer == "" {
		toolServer = "http://localhost:3100/mcp"
	}
	namespace := strings.TrimSpace(os.Getenv("TOOL_NAMESPACE"))
	if namespace == "" {
		namespace = "adforge"
	}
	agent := strings.TrimSpace(os.Getenv("AGENT_NAME"))
	if agent == "" {
		agent = "campaign-generator"
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,
		PostgresDSN: os.Getenv("POSTGRES_DSN"),

		ToolServerURL: toolServer,
		ToolNamespace: namespace,
		ToolTimeout:   envDuration("TOOL_TIMEOUT", 60*time.Second),
		AgentName:     agent,

		PromptRatePerMillion:     envFloat("PROMPT_RATE_PER_MILLION", 2.50),
		CompletionRatePerMillion: envFloat("COMPLETION_RATE_PER_MILLION", 10.00),

		StaleSourceTTL:      envDuration("STALE_SOURCE_TTL", 30*time.Minute),
		StaleSweepInterval:  envDuration("STALE_SWEEP_INTERVAL", 5*time.Minute),
		StaleSweepBatchSize: envInt("STALE_SWEEP_BATCH_SIZE", 100),
	}, nil
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func envFloat(name string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
