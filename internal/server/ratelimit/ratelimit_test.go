package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{},
		Blacklist:     map[string]bool{},
		EndpointConfigs: []EndpointConfig{
			{Path: "/v1/blueprint", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},
			{Path: "/v1/applications/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
		},
	}
}

func TestAllow_BurstThenLimited(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	// Burst of 2, refilling at 10/hour: third request inside the burst
	// window must be rejected.
	allowed, _ := limiter.Allow("1.2.3.4", "/v1/blueprint", "POST")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("1.2.3.4", "/v1/blueprint", "POST")
	assert.True(t, allowed)

	allowed, info := limiter.Allow("1.2.3.4", "/v1/blueprint", "POST")
	require.False(t, allowed)
	assert.Equal(t, 10, info.Limit)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestAllow_ClientsIsolated(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := limiter.Allow("1.1.1.1", "/v1/blueprint", "POST")
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow("1.1.1.1", "/v1/blueprint", "POST")
	assert.False(t, allowed)

	// A different client still has its full burst.
	allowed, _ = limiter.Allow("2.2.2.2", "/v1/blueprint", "POST")
	assert.True(t, allowed)
}

func TestAllow_WhitelistAndBlacklist(t *testing.T) {
	config := testConfig()
	config.Whitelist["10.0.0.1"] = true
	config.Blacklist["10.0.0.2"] = true
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 20; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/v1/blueprint", "POST")
		require.True(t, allowed)
	}

	allowed, _ := limiter.Allow("10.0.0.2", "/health", "POST")
	assert.False(t, allowed)
}

func TestAllow_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/v1/blueprint", "POST")
		require.True(t, allowed)
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := testConfig().EndpointConfigs

	exact := MatchEndpoint("/v1/blueprint", "POST", configs)
	require.NotNil(t, exact)
	assert.Equal(t, 10, exact.Limit)

	prefix := MatchEndpoint("/v1/applications/abc-123", "DELETE", configs)
	require.NotNil(t, prefix)
	assert.Equal(t, 100, prefix.Limit)

	assert.Nil(t, MatchEndpoint("/v1/analyses", "GET", configs))

	health := MatchEndpoint("/health", "GET", configs)
	require.NotNil(t, health)
	assert.Equal(t, 0, health.Limit)
}

func TestTokenBucket_Refill(t *testing.T) {
	// 100 tokens/second, capacity 1: drains immediately and refills within
	// a few tens of milliseconds.
	bucket := newTokenBucket(1, 100)

	assert.True(t, bucket.allow())
	assert.False(t, bucket.allow())

	time.Sleep(50 * time.Millisecond)
	assert.True(t, bucket.allow())
}
