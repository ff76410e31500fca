package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for one endpoint.
// Paths ending with "/" match as prefixes.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // maximum requests per window
	Window time.Duration // time window
	Burst  int           // burst capacity, defaults to Limit when 0
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint limits. Endpoints that
// call the embedding or generation services are the strictest tier; auth
// endpoints are limited to slow down credential stuffing.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/v1/analyze", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/v1/skill-gap", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/v1/blueprint", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},

		{Path: "/v1/auth/register", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3},
		{Path: "/v1/auth/login", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},

		{Path: "/v1/applications", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/v1/applications/", Method: "PATCH", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/v1/applications/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/v1/applications/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
