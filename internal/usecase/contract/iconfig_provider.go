package usecasecontract

import "time"

// IConfigProvider exposes the API server configuration.
type IConfigProvider interface {
	GetAppPort() string
	GetMongoURI() string
	GetMongoDBName() string
	GetRedisURL() string
	GetJWTSecret() string
	GetAccessTokenExpiry() time.Duration
	GetRateLimitPerSecond() float64
	GetFeedCacheTTL() time.Duration
	GetCORSAllowOrigins() []string
	GetSamplePostsEnabled() bool
	GetAppEnv() string
	GetLogLevel() string
}
