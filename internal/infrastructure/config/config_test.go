package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "MONGODB_DB_NAME", "RATE_LIMIT_PER_SECOND", "FEED_CACHE_TTL_SECONDS", "CORS_ALLOW_ORIGINS", "SAMPLE_POSTS_ENABLED", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg := NewConfig()

	assert.Equal(t, "8080", cfg.GetAppPort())
	assert.Equal(t, "inflo", cfg.GetMongoDBName())
	assert.Equal(t, "info", cfg.GetLogLevel())
	assert.Equal(t, 10.0, cfg.GetRateLimitPerSecond())
	assert.Equal(t, 30*time.Second, cfg.GetFeedCacheTTL())
	assert.Equal(t, []string{"*"}, cfg.GetCORSAllowOrigins())
	assert.True(t, cfg.GetSamplePostsEnabled())
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGODB_DB_NAME", "feed")
	t.Setenv("RATE_LIMIT_PER_SECOND", "2.5")
	t.Setenv("FEED_CACHE_TTL_SECONDS", "5")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("SAMPLE_POSTS_ENABLED", "false")
	t.Setenv("ACCESS_TOKEN_EXPIRY_MINUTES", "15")

	cfg := NewConfig()

	assert.Equal(t, "9090", cfg.GetAppPort())
	assert.Equal(t, "feed", cfg.GetMongoDBName())
	assert.Equal(t, 2.5, cfg.GetRateLimitPerSecond())
	assert.Equal(t, 5*time.Second, cfg.GetFeedCacheTTL())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.GetCORSAllowOrigins())
	assert.False(t, cfg.GetSamplePostsEnabled())
	assert.Equal(t, 15*time.Minute, cfg.GetAccessTokenExpiry())
}
