package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	usecasecontract "github.com/mikiasgoitom/Inflo/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppPort            string
	MongoURI           string
	MongoDBName        string
	RedisURL           string
	JWTSecret          string
	AccessTokenExpiry  time.Duration
	RateLimitPerSecond float64
	FeedCacheTTL       time.Duration
	CORSAllowOrigins   []string
	SamplePostsEnabled bool
	AppEnv             string
	LogLevel           string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		AppPort:            getEnv("PORT", "8080"),
		MongoURI:           getEnv("MONGODB_URI", ""),
		MongoDBName:        getEnv("MONGODB_DB_NAME", "inflo"),
		RedisURL:           getEnv("REDIS_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		AccessTokenExpiry:  time.Minute * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 60)),
		RateLimitPerSecond: getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
		FeedCacheTTL:       time.Second * time.Duration(getEnvAsInt("FEED_CACHE_TTL_SECONDS", 30)),
		CORSAllowOrigins:   getEnvAsList("CORS_ALLOW_ORIGINS", []string{"*"}),
		SamplePostsEnabled: getEnvAsBool("SAMPLE_POSTS_ENABLED", true),
		AppEnv:             getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

func (c *Config) GetAppPort() string { return c.AppPort }

func (c *Config) GetMongoURI() string { return c.MongoURI }

func (c *Config) GetMongoDBName() string { return c.MongoDBName }

// GetRedisURL returns the Redis URL; empty disables the feed cache.
func (c *Config) GetRedisURL() string { return c.RedisURL }

func (c *Config) GetJWTSecret() string { return c.JWTSecret }

// GetAccessTokenExpiry returns the lifetime of issued access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration { return c.AccessTokenExpiry }

// GetRateLimitPerSecond returns the per-IP request budget.
func (c *Config) GetRateLimitPerSecond() float64 { return c.RateLimitPerSecond }

// GetFeedCacheTTL returns how long the post list stays cached.
func (c *Config) GetFeedCacheTTL() time.Duration { return c.FeedCacheTTL }

func (c *Config) GetCORSAllowOrigins() []string { return c.CORSAllowOrigins }

// GetSamplePostsEnabled reports whether an empty feed is padded with demonstration posts.
func (c *Config) GetSamplePostsEnabled() bool { return c.SamplePostsEnabled }

func (c *Config) GetAppEnv() string { return c.AppEnv }

func (c *Config) GetLogLevel() string { return c.LogLevel }

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil && value > 0 {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}

// getEnvAsList splits a comma separated variable, ignoring empty entries.
func getEnvAsList(name string, fallback []string) []string {
	valStr := getEnv(name, "")
	if valStr == "" {
		return fallback
	}
	var out []string
	for _, v := range strings.Split(valStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
