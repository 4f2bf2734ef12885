package environments

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Graph GraphConfig
}

// GraphConfig holds everything needed to reach the Graph API.
type GraphConfig struct {
	BaseURL     string
	APIVersion  string
	AccessToken string
	Timeout     time.Duration
}

func Load() *Config {
	return &Config{
		Graph: GraphConfig{
			BaseURL:     GetEnv("GRAPH_API_BASE_URL", "https://graph.facebook.com"),
			APIVersion:  GetEnv("GRAPH_API_VERSION", "v3.1"),
			AccessToken: GetEnv("PAGE_ACCESS_TOKEN", ""),
			Timeout:     time.Duration(GetEnvAsInt("GRAPH_TIMEOUT_SECONDS", 30)) * time.Second,
		},
	}
}

// WithAccessToken prefers an explicitly injected token over the environment.
// An empty token leaves the loaded value untouched.
func (c *Config) WithAccessToken(token string) *Config {
	if token != "" {
		c.Graph.AccessToken = token
	}
	return c
}

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
